package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/nutricoach/nutricoach/internal/core/domain"
)

var (
	askStyle        string
	askShowSources  bool
	profileAge      int
	profileGender   string
	profileActivity string
	profileGoals    string
	profileRestrict []string
	profilePrefer   []string
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask a one-shot nutrition question",
	Long: `Answers a single question from the knowledge base. Profile flags
personalise the answer without starting a conversation.`,
	Args: cobra.ExactArgs(1),
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVar(&askStyle, "style", "", "response style (brief, comprehensive, detailed)")
	askCmd.Flags().BoolVar(&askShowSources, "sources", false, "list the documents behind the answer")
	addProfileFlags(askCmd)
	rootCmd.AddCommand(askCmd)
}

// addProfileFlags registers the shared personalisation flags.
func addProfileFlags(cmd *cobra.Command) {
	cmd.Flags().IntVar(&profileAge, "age", 0, "your age")
	cmd.Flags().StringVar(&profileGender, "gender", "", "your gender")
	cmd.Flags().StringVar(&profileActivity, "activity", "", "activity level, e.g. sedentary, moderate, very active")
	cmd.Flags().StringVar(&profileGoals, "goals", "", "nutrition goals, e.g. \"muscle building\"")
	cmd.Flags().StringSliceVar(&profileRestrict, "restrictions", nil, "dietary restrictions")
	cmd.Flags().StringSliceVar(&profilePrefer, "preferences", nil, "food preferences")
}

// buildProfile assembles a profile from the flags, or nil if none set.
func buildProfile() *domain.UserProfile {
	profile := &domain.UserProfile{
		Age:                 profileAge,
		Gender:              profileGender,
		ActivityLevel:       profileActivity,
		Goals:               profileGoals,
		DietaryRestrictions: profileRestrict,
		Preferences:         profilePrefer,
	}
	if profile.IsZero() {
		return nil
	}
	return profile
}

// resolveStyle picks the flag style, falling back to the configured
// default. An unknown style is rejected rather than silently defaulted.
func resolveStyle(flag string) (domain.ResponseStyle, error) {
	if flag == "" {
		return appSettings.Chat.Style, nil
	}
	style := domain.ResponseStyle(flag)
	if !style.IsValid() {
		return "", fmt.Errorf("unknown style %q (brief, comprehensive, detailed, conversational)", flag)
	}
	return style, nil
}

func runAsk(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if err := ensureCoach(ctx); err != nil {
		return err
	}

	style, err := resolveStyle(askStyle)
	if err != nil {
		return err
	}

	answer, err := coach.Answer(ctx, args[0], buildProfile(), nil, style)
	if err != nil {
		return requireIndexed(err)
	}

	cmd.Println(answerStyle.Render(answer.Response))
	if askShowSources {
		cmd.Println()
		printSources(cmd, answer.Sources)
	}
	return nil
}

// printSources lists source documents by their display name.
func printSources(cmd *cobra.Command, sources []map[string]string) {
	if len(sources) == 0 {
		return
	}
	cmd.Println(titleStyle.Render("Sources:"))
	for i, source := range sources {
		name := sourceName(source)
		cmd.Printf("  [%d] %s %s\n", i+1, name, mutedStyle.Render("("+source[domain.MetaDocType]+")"))
	}
}

// sourceName picks the most descriptive metadata field available.
func sourceName(source map[string]string) string {
	for _, key := range []string{"food_name", "topic", "recipe_name", "template_name"} {
		if name := strings.TrimSpace(source[key]); name != "" {
			return name
		}
	}
	return "Nutrition document"
}
