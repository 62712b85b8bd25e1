package theme

// shadeNames are the Tailwind shade steps, lightest first.
var shadeNames = []string{"50", "100", "200", "300", "400", "500", "600", "700", "800", "900"}

// families holds the Tailwind-style colour scales shared by every preset.
var families = map[string][]string{
	"slate":  {"#f8fafc", "#f1f5f9", "#e2e8f0", "#cbd5e1", "#94a3b8", "#64748b", "#475569", "#334155", "#1e293b", "#0f172a"},
	"blue":   {"#eff6ff", "#dbeafe", "#bfdbfe", "#93c5fd", "#60a5fa", "#3b82f6", "#2563eb", "#1d4ed8", "#1e40af", "#1e3a8a"},
	"green":  {"#f0fdf4", "#dcfce7", "#bbf7d0", "#86efac", "#4ade80", "#22c55e", "#16a34a", "#15803d", "#166534", "#14532d"},
	"red":    {"#fef2f2", "#fee2e2", "#fecaca", "#fca5a5", "#f87171", "#ef4444", "#dc2626", "#b91c1c", "#991b1b", "#7f1d1d"},
	"yellow": {"#fefce8", "#fef3c7", "#fde68a", "#fcd34d", "#fbbf24", "#eab308", "#ca8a04", "#a16207", "#854d0e", "#713f12"},
	"purple": {"#faf5ff", "#f3e8ff", "#e9d5ff", "#d8b4fe", "#c084fc", "#a855f7", "#9333ea", "#7c3aed", "#6b21a8", "#581c87"},
	"cyan":   {"#ecfeff", "#cffafe", "#a5f3fc", "#67e8f9", "#22d3ee", "#06b6d4", "#0891b2", "#0e7490", "#155e75", "#164e63"},
}

// colorTokens builds the "colors" token group: family -> shade -> hex.
func colorTokens() map[string]any {
	out := make(map[string]any, len(families))
	for family, shades := range families {
		scale := make(map[string]any, len(shades))
		for i, hex := range shades {
			scale[shadeNames[i]] = hex
		}
		out[family] = scale
	}
	return out
}

// shade returns a colour from a family scale, e.g. shade("blue", 5) for blue-500.
func shade(family string, step int) string {
	return families[family][step]
}

// spacingTokens is the spacing scale in terminal cells.
func spacingTokens() map[string]any {
	return map[string]any{
		"none": 0,
		"xs":   1,
		"sm":   1,
		"md":   2,
		"lg":   3,
		"xl":   4,
		"2xl":  6,
	}
}

// slot is a semantic colour set: base colour, content drawn on it, a muted
// variant and an accent that contrasts with base.
type slot struct {
	base, onBase, muted, contrast string
}

func (s slot) tokens() map[string]any {
	return map[string]any{
		"base":     s.base,
		"onBase":   s.onBase,
		"muted":    s.muted,
		"contrast": s.contrast,
	}
}
