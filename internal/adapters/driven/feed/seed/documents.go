package seed

import "github.com/nutricoach/nutricoach/internal/core/domain"

// seedDocuments is the bootstrap corpus. Nutrition values are per 100g.
var seedDocuments = []domain.Document{
	{
		ID:      "food_001",
		Type:    domain.DocTypeFoodItem,
		Content: "Chicken breast, skinless, is a high protein poultry that provides 165 calories per 100g serving. Macronutrient profile: 31g protein, 0g carbohydrates, 3.6g fat. Excellent for muscle building and repair. Ideal for post-workout meals or as a main protein source.",
		Metadata: map[string]any{
			"food_name": "Chicken Breast, skinless",
			"category":  "Poultry",
			"calories":  165,
			"protein":   31.0,
			"health_benefits": "Lean protein, muscle building",
		},
	},
	{
		ID:      "food_002",
		Type:    domain.DocTypeFoodItem,
		Content: "Salmon, Atlantic, is a high protein seafood that provides 208 calories per 100g serving. Macronutrient profile: 25.4g protein, 0g carbohydrates, 12.4g fat. Excellent for muscle building and repair. Rich in omega-3 fatty acids that support heart and brain health.",
		Metadata: map[string]any{
			"food_name": "Salmon, Atlantic",
			"category":  "Seafood",
			"calories":  208,
			"protein":   25.4,
			"health_benefits": "Omega-3 fatty acids, heart health",
		},
	},
	{
		ID:      "food_003",
		Type:    domain.DocTypeFoodItem,
		Content: "Greek yogurt, plain, is a high protein dairy food that provides 59 calories per 100g serving. Macronutrient profile: 10g protein, 3.6g carbohydrates, 0.4g fat. Good source of calcium (110mg). Good protein source for muscle maintenance and a low calorie option for weight control.",
		Metadata: map[string]any{
			"food_name": "Greek Yogurt, plain",
			"category":  "Dairy & Eggs",
			"calories":  59,
			"protein":   10.0,
			"health_benefits": "Probiotics, calcium, lean protein",
		},
	},
	{
		ID:      "food_004",
		Type:    domain.DocTypeFoodItem,
		Content: "Spinach, raw, is a nutrient-dense vegetable that provides 23 calories per 100g serving. Macronutrient profile: 2.9g protein, 4g carbohydrates, 0.4g fat. Excellent source of vitamin C (28.1mg), good source of calcium (99mg) and contains 2.71mg iron. Very low calorie option, great for weight management. Excellent for salads, stir-fries, or as a nutritious side dish.",
		Metadata: map[string]any{
			"food_name": "Spinach, raw",
			"category":  "Vegetables",
			"calories":  23,
			"protein":   2.9,
			"health_benefits": "Iron, vitamin C, low calorie",
		},
	},
	{
		ID:      "food_005",
		Type:    domain.DocTypeFoodItem,
		Content: "Lentils, cooked, are a plant protein legume that provides 116 calories per 100g serving. Macronutrient profile: 9g protein, 20g carbohydrates, 0.4g fat. High in dietary fiber (7.9g) and contains 3.3mg iron. Good protein source for muscle maintenance, especially in plant-based diets.",
		Metadata: map[string]any{
			"food_name": "Lentils, cooked",
			"category":  "Legumes",
			"calories":  116,
			"protein":   9.0,
			"health_benefits": "Plant protein, fiber, iron",
		},
	},
	{
		ID:      "food_006",
		Type:    domain.DocTypeFoodItem,
		Content: "Oats, rolled dry, are a whole grain that provides 389 calories per 100g serving. Macronutrient profile: 16.9g protein, 66g carbohydrates, 6.9g fat. High in dietary fiber (10.6g). Calorie-dense food, use in moderation for weight management. Sustained-energy carbohydrate source for breakfast and pre-workout meals.",
		Metadata: map[string]any{
			"food_name": "Oats, rolled dry",
			"category":  "Grains",
			"calories":  389,
			"protein":   16.9,
			"health_benefits": "Fiber, sustained energy",
		},
	},
	{
		ID:      "food_007",
		Type:    domain.DocTypeFoodItem,
		Content: "Banana, raw, is a carbohydrate-rich fruit that provides 89 calories per 100g serving. Macronutrient profile: 1.1g protein, 23g carbohydrates, 0.3g fat. Good source of potassium for electrolyte balance. Perfect for snacking, smoothies, or quick pre- and post-workout energy.",
		Metadata: map[string]any{
			"food_name": "Banana, raw",
			"category":  "Fruits",
			"calories":  89,
			"protein":   1.1,
			"health_benefits": "Potassium, quick energy",
		},
	},
	{
		ID:      "food_008",
		Type:    domain.DocTypeFoodItem,
		Content: "Almonds, raw, are a nutrient-dense nut that provides 579 calories per 100g serving. Macronutrient profile: 21.2g protein, 22g carbohydrates, 49.9g fat. High in dietary fiber (12.5g) and a good source of calcium (269mg). Calorie-dense food, use in moderation for weight management. Great for snacking or adding to yogurt.",
		Metadata: map[string]any{
			"food_name": "Almonds, raw",
			"category":  "Nuts & Seeds",
			"calories":  579,
			"protein":   21.2,
			"health_benefits": "Healthy fats, vitamin E, fiber",
		},
	},
	{
		ID:      "knowledge_001",
		Type:    domain.DocTypeKnowledge,
		Content: "Protein Requirements by Activity Level: Sedentary adults need 0.8g protein per kg body weight daily. Recreational athletes require 1.0-1.4g/kg, competitive endurance athletes need 1.2-1.4g/kg, and strength athletes need 1.6-2.0g/kg. Distribute protein evenly across meals for optimal muscle protein synthesis.",
		Metadata: map[string]any{
			"topic":    "Protein Requirements by Activity Level",
			"category": "Protein Guidelines",
			"tags":     []string{"protein", "requirements", "athletes", "muscle synthesis"},
		},
	},
	{
		ID:      "knowledge_002",
		Type:    domain.DocTypeKnowledge,
		Content: "Sustainable Weight Loss Rate: Healthy weight loss is 1-2 pounds per week, requiring a 500-1000 calorie daily deficit. Losing faster than 2 lbs/week increases muscle loss risk. Combine moderate calorie restriction (20-25% below maintenance) with strength training.",
		Metadata: map[string]any{
			"topic":    "Sustainable Weight Loss Rate",
			"category": "Weight Management",
			"tags":     []string{"weight loss", "caloric deficit", "muscle preservation"},
		},
	},
	{
		ID:      "knowledge_003",
		Type:    domain.DocTypeKnowledge,
		Content: "Muscle Gain Nutrition: Building muscle requires a slight caloric surplus (200-500 calories above maintenance), adequate protein (1.6-2.2g/kg body weight), and progressive resistance training. Aim for 20-40g protein within 2 hours post-workout.",
		Metadata: map[string]any{
			"topic":    "Muscle Gain Nutrition",
			"category": "Weight Management",
			"tags":     []string{"muscle gain", "caloric surplus", "protein timing"},
		},
	},
	{
		ID:      "knowledge_004",
		Type:    domain.DocTypeKnowledge,
		Content: "Carbohydrate Loading Strategy: For endurance events longer than 90 minutes, consume 7-12g carbohydrates per kg body weight for 1-3 days before competition. Include easily digestible sources like pasta, rice, and bananas while reducing fiber intake 24 hours prior.",
		Metadata: map[string]any{
			"topic":    "Carbohydrate Loading Strategy",
			"category": "Sports Nutrition",
			"tags":     []string{"carb loading", "endurance", "glycogen"},
		},
	},
	{
		ID:      "knowledge_005",
		Type:    domain.DocTypeKnowledge,
		Content: "Iron Absorption Enhancement: Vitamin C increases iron absorption from plant sources by up to 4x. Pair iron-rich foods like spinach with citrus fruits, bell peppers, or tomatoes. Avoid tea and coffee with iron-rich meals as tannins inhibit absorption.",
		Metadata: map[string]any{
			"topic":    "Iron Absorption Enhancement",
			"category": "Micronutrients",
			"tags":     []string{"iron", "vitamin C", "absorption"},
		},
	},
	{
		ID:      "knowledge_006",
		Type:    domain.DocTypeKnowledge,
		Content: "Electrolyte Balance: During exercise longer than 60 minutes, replace sodium (200-300mg per hour) and potassium. Natural sources include bananas (potassium) and salted nuts (sodium). Sports drinks are beneficial for activities over 90 minutes.",
		Metadata: map[string]any{
			"topic":    "Electrolyte Balance",
			"category": "Hydration",
			"tags":     []string{"electrolytes", "sodium", "potassium"},
		},
	},
	{
		ID:      "knowledge_007",
		Type:    domain.DocTypeKnowledge,
		Content: "Complete Plant Proteins: Combine complementary proteins throughout the day: grains with legumes (rice and beans), nuts with grains (almond butter on toast), or seeds with legumes. Quinoa, chia seeds, and hemp seeds are complete proteins.",
		Metadata: map[string]any{
			"topic":    "Complete Plant Proteins",
			"category": "Plant-Based",
			"tags":     []string{"plant protein", "complementary proteins", "vegan"},
		},
	},
	{
		ID:      "knowledge_008",
		Type:    domain.DocTypeKnowledge,
		Content: "Balanced Plate Method: Fill half your plate with non-starchy vegetables, one quarter with lean protein, and one quarter with complex carbohydrates. Add healthy fats like avocado, nuts, or olive oil. This method automatically balances macronutrients and controls portions.",
		Metadata: map[string]any{
			"topic":    "Balanced Plate Method",
			"category": "Meal Planning",
			"tags":     []string{"plate method", "portion control", "balanced meals"},
		},
	},
	{
		ID:      "recipe_001",
		Type:    domain.DocTypeRecipe,
		Content: "High-Protein Breakfast Bowl: A protein-rich breakfast combining Greek yogurt with antioxidant berries and healthy fats from nuts and seeds. Provides sustained energy and supports muscle maintenance. Main ingredients: Greek Yogurt, Blueberries, Almonds, Chia Seeds.",
		Metadata: map[string]any{
			"recipe_name":     "High-Protein Breakfast Bowl",
			"category":        "Breakfast Recipes",
			"ingredients":     []string{"Greek Yogurt", "Blueberries", "Almonds", "Chia Seeds"},
			"nutrition_focus": "High Protein, Antioxidants",
		},
	},
	{
		ID:      "recipe_002",
		Type:    domain.DocTypeRecipe,
		Content: "Post-Workout Recovery Smoothie: Optimal post-workout nutrition combining quick carbs from banana, protein from yogurt, and micronutrients from spinach. Perfect 3:1 carb to protein ratio for recovery. Main ingredients: Banana, Greek Yogurt, Spinach, Chia Seeds.",
		Metadata: map[string]any{
			"recipe_name":     "Post-Workout Recovery Smoothie",
			"category":        "Sports Nutrition",
			"ingredients":     []string{"Banana", "Greek Yogurt", "Spinach", "Chia Seeds"},
			"nutrition_focus": "Recovery, Protein, Carbohydrates",
		},
	},
	{
		ID:      "recipe_003",
		Type:    domain.DocTypeRecipe,
		Content: "Heart-Healthy Salad: A heart-healthy meal rich in omega-3 fatty acids from salmon and walnuts, monounsaturated fats from avocado and olive oil, plus antioxidants from kale. Main ingredients: Salmon, Avocado, Kale, Walnuts, Olive Oil.",
		Metadata: map[string]any{
			"recipe_name":     "Heart-Healthy Salad",
			"category":        "Main Meals",
			"ingredients":     []string{"Salmon", "Avocado", "Kale", "Walnuts", "Olive Oil"},
			"nutrition_focus": "Heart Health, Omega-3, Antioxidants",
		},
	},
	{
		ID:      "template_001",
		Type:    domain.DocTypeMealTemplate,
		Content: "Weight Loss Meal Template: For sustainable weight loss, create meals with lean protein (25-30% calories), non-starchy vegetables (unlimited), moderate complex carbs (25-30% calories), and healthy fats (20-25% calories). Examples: Grilled chicken with roasted vegetables and quinoa, or salmon salad with avocado.",
		Metadata: map[string]any{
			"template_name": "Weight Loss Meal Template",
			"category":      "Meal Planning",
			"tags":          []string{"weight loss", "meal planning", "macronutrients"},
		},
	},
	{
		ID:      "template_002",
		Type:    domain.DocTypeMealTemplate,
		Content: "Muscle Building Meal Template: For muscle gain, ensure adequate protein (1.6-2.2g/kg body weight), sufficient carbohydrates for energy (45-55% calories), and healthy fats (20-30% calories). Include protein at every meal and snack. Examples: Oatmeal with protein powder and berries, or lean beef with sweet potato.",
		Metadata: map[string]any{
			"template_name": "Muscle Building Meal Template",
			"category":      "Meal Planning",
			"tags":          []string{"muscle building", "protein", "meal planning"},
		},
	},
}
