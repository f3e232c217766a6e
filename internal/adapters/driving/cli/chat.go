package cli

import (
	"bufio"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nutricoach/nutricoach/internal/core/services"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive coaching session",
	Long: `Starts a conversational session that remembers earlier turns. Small
talk stays local; nutrition questions pull context from the knowledge
base. Type 'exit' to leave or 'reset' to start over.`,
	Args: cobra.NoArgs,
	RunE: runChat,
}

func init() {
	addProfileFlags(chatCmd)
	rootCmd.AddCommand(chatCmd)
}

func runChat(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	if err := ensureCoach(ctx); err != nil {
		return err
	}

	session := services.NewSession(coach)
	profile := buildProfile()

	cmd.Println(titleStyle.Render("NutriCoach") + mutedStyle.Render("  ("+session.ID()[:8]+")"))
	cmd.Println(mutedStyle.Render("Ask me about nutrition. 'exit' to quit, 'reset' to start over."))
	printFollowUps(cmd, session.SuggestFollowUps())
	cmd.Println()

	scanner := bufio.NewScanner(cmd.InOrStdin())
	for {
		cmd.Print(promptStyle.Render("you> "))
		if !scanner.Scan() {
			cmd.Println()
			return scanner.Err()
		}

		message := scanner.Text()
		switch message {
		case "":
			continue
		case "exit", "quit":
			cmd.Println(mutedStyle.Render("Take care!"))
			return nil
		case "reset":
			session.Reset()
			cmd.Println(mutedStyle.Render("Conversation cleared."))
			continue
		}

		reply, err := session.Chat(ctx, message, profile, appSettings.Chat.Style)
		if err != nil {
			cmd.Println(mutedStyle.Render("Error: " + err.Error()))
			continue
		}

		cmd.Println()
		cmd.Println(answerStyle.Render(reply.Response))
		if reply.ContextUsed {
			cmd.Println(mutedStyle.Render(fmt.Sprintf("(%d sources)", reply.ContextCount)))
		}
		printFollowUps(cmd, reply.FollowUps)
		cmd.Println()
	}
}

func printFollowUps(cmd *cobra.Command, followUps []string) {
	if len(followUps) == 0 {
		return
	}
	cmd.Println(mutedStyle.Render("You could ask:"))
	for _, q := range followUps {
		cmd.Println(mutedStyle.Render("  - " + q))
	}
}
