package services

import "strings"

// BotReply produces RhythmBot's canned answer for a question. The real
// AI-backed assistant lives behind an external endpoint; this responder keeps
// the chat flow working without it, answering in the same sectioned format
// ([Advice] / [Workout Plan] / [Diet Tips]) the client renders.
func BotReply(question string) string {
	lowered := strings.ToLower(question)

	switch {
	case containsAny(lowered, "meal", "food", "eat", "diet", "nutrition"):
		return "[Diet Tips]\n" +
			"- Aim for protein with every meal to stay full and support recovery\n" +
			"- Log each meal right after eating so your calorie totals stay honest\n" +
			"- Keep simple snacks like fruit or yogurt ready for after a session"
	case containsAny(lowered, "dance", "workout", "exercise", "train", "move"):
		return "[Workout Plan]\n" +
			"- Warm up: 5 min light movement\n" +
			"- Dance session: 20-30 min at medium intensity\n" +
			"- Cool down: 5 min stretching\n" +
			"Start a tracked session from the dance screen to count it toward your goal."
	case containsAny(lowered, "calorie", "burn", "bmr", "bmi", "goal"):
		return "[Advice]\nYour calorie goal is computed from your BMR and activity level. " +
			"Check your dashboard for today's burned and consumed totals, and update " +
			"your weight in settings so the numbers stay accurate."
	case containsAny(lowered, "weight", "progress", "lose", "gain"):
		return "[Advice]\nConsistency beats intensity. Record your weight regularly and " +
			"watch the trend over weeks, not days. A 500 kcal daily deficit works out " +
			"to roughly half a kilo per week."
	default:
		return "[Advice]\nI can help with workouts, meals and your calorie goals. " +
			"Ask me something like \"what should I eat after dancing?\" or " +
			"\"how many calories does Zumba burn?\""
	}
}

func containsAny(text string, keywords ...string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
