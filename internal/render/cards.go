package render

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"gitcards/internal/stats"
)

// * Supported card types, matching the /card/{username}/{type} route
const (
	CardStats             = "stats"
	CardProfileHeader     = "profile-header"
	CardLanguagesByRepo   = "languages-by-repo"
	CardLanguagesByCommit = "languages-by-commit"
	CardCommitsByHour     = "commits-by-hour"
	CardRepoTable         = "repo-table"
)

const fontFamily = "'Segoe UI', Ubuntu, sans-serif"

// * Card renders one card type; ok is false for an unknown type. "now" is
// * injected so output stays deterministic under test.
func Card(cardType string, data *stats.ProfileData, t Theme, now time.Time) (svg string, ok bool) {
	switch cardType {
	case CardStats:
		return StatsCard(data, t, now), true
	case CardProfileHeader:
		return ProfileHeaderCard(data, t, now), true
	case CardLanguagesByRepo:
		return LanguagesByRepoCard(data, t), true
	case CardLanguagesByCommit:
		return LanguagesByCommitCard(data, t), true
	case CardCommitsByHour:
		return CommitsByHourCard(data, t), true
	case CardRepoTable:
		return RepoTableCard(data, t), true
	default:
		return "", false
	}
}

func CardTypes() []string {
	return []string{
		CardStats,
		CardProfileHeader,
		CardLanguagesByRepo,
		CardLanguagesByCommit,
		CardCommitsByHour,
		CardRepoTable,
	}
}

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&#39;",
)

func esc(s string) string {
	return escaper.Replace(s)
}

func formatNum(n int) string {
	if n >= 1000 {
		return fmt.Sprintf("%.1fk", float64(n)/1000)
	}
	return strconv.Itoa(n)
}

// * Thousands separators, e.g. 12345 -> "12,345"
func formatGrouped(n int) string {
	s := strconv.Itoa(n)
	if len(s) <= 3 {
		return s
	}
	var b strings.Builder
	lead := len(s) % 3
	if lead > 0 {
		b.WriteString(s[:lead])
	}
	for i := lead; i < len(s); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(s[i : i+3])
	}
	return b.String()
}

// * Rune-aware: slicing bytes could split a multi-byte character and emit
// * invalid UTF-8 into the SVG
func truncate(s string, max int) string {
	if utf8.RuneCountInString(s) <= max {
		return s
	}
	runes := []rune(s)
	return string(runes[:max-1]) + "…"
}

type langEntry struct {
	name  string
	value int
}

// * Top n entries by value descending; name ascending breaks ties so the
// * rendered output is stable for identical inputs
func topEntries(m map[string]int, n int) []langEntry {
	entries := make([]langEntry, 0, len(m))
	for name, value := range m {
		entries = append(entries, langEntry{name: name, value: value})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].value != entries[j].value {
			return entries[i].value > entries[j].value
		}
		return entries[i].name < entries[j].name
	})
	if len(entries) > n {
		entries = entries[:n]
	}
	return entries
}

func displayName(p stats.Profile) string {
	if p.Name != "" {
		return p.Name
	}
	return p.Login
}

// ──────────────── stats card ────────────────

func StatsCard(data *stats.ProfileData, t Theme, now time.Time) string {
	type statRow struct {
		icon  string
		label string
		value string
	}

	rows := []statRow{
		{"⭐", "Total Stars", formatNum(data.TotalStars)},
		{"🔥", fmt.Sprintf("%d Commits", now.Year()), formatNum(data.YearCommitCount)},
		{"📁", "Total Repos", formatNum(len(data.Repos))},
		{"👥", "Followers", formatNum(data.Profile.Followers)},
		{"🐛", "Total Issues", formatNum(data.TotalIssues)},
		{"🔀", "Total PRs", formatNum(data.TotalPRs)},
		{"🤝", "Contributed to", formatNum(data.ContributedTo)},
	}

	const rowH = 32
	height := 70 + len(rows)*rowH + 20

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="400" height="%d" viewBox="0 0 400 %d" fill="none">`, height, height)
	b.WriteString("\n  <style>\n    @keyframes fadeIn { from { opacity: 0; transform: translateX(-10px); } to { opacity: 1; transform: translateX(0); } }\n    .stat-row { animation: fadeIn 0.6s ease forwards; opacity: 0; }\n")
	for i := range rows {
		fmt.Fprintf(&b, "    .stat-row:nth-child(%d) { animation-delay: %.1fs; }\n", i+1, float64(i)*0.1)
	}
	b.WriteString("  </style>\n")
	fmt.Fprintf(&b, `  <rect x="0.5" y="0.5" width="399" height="%d" rx="8" ry="8" fill="%s" stroke="%s" stroke-width="1"/>`+"\n", height-1, t.Bg, t.Border)
	fmt.Fprintf(&b, `  <text x="24" y="38" font-size="18" font-weight="700" fill="%s" font-family="%s">%s&#39;s GitHub Stats</text>`+"\n", t.Title, fontFamily, esc(displayName(data.Profile)))
	fmt.Fprintf(&b, `  <line x1="24" y1="52" x2="376" y2="52" stroke="%s" stroke-width="1"/>`+"\n", t.GridColor)

	for i, row := range rows {
		y := 68 + i*rowH
		fmt.Fprintf(&b, `  <g transform="translate(0, %d)">`+"\n", y)
		fmt.Fprintf(&b, `    <text x="30" y="0" font-size="16" fill="%s" dominant-baseline="middle">%s</text>`+"\n", t.Text, row.icon)
		fmt.Fprintf(&b, `    <text x="56" y="0" font-size="14" fill="%s" dominant-baseline="middle" font-family="%s">%s</text>`+"\n", t.Text, fontFamily, esc(row.label))
		fmt.Fprintf(&b, `    <text x="370" y="0" font-size="15" fill="%s" font-weight="700" dominant-baseline="middle" text-anchor="end" font-family="%s">%s</text>`+"\n", t.Title, fontFamily, esc(row.value))
		b.WriteString("  </g>\n")
	}

	b.WriteString("</svg>")
	return b.String()
}

// ──────────────── profile header ────────────────

func ProfileHeaderCard(data *stats.ProfileData, t Theme, now time.Time) string {
	p := data.Profile
	name := esc(displayName(p))
	bio := esc(truncate(p.Bio, 80))
	joinYear := p.CreatedAt.Year()
	yearsAgo := now.Year() - joinYear

	var infoLines []string
	if p.Location != "" {
		infoLines = append(infoLines, "📍 "+esc(p.Location))
	}
	if p.Company != "" {
		infoLines = append(infoLines, "🏢 "+esc(p.Company))
	}
	if p.Blog != "" {
		blog := strings.TrimPrefix(strings.TrimPrefix(p.Blog, "https://"), "http://")
		infoLines = append(infoLines, "🔗 "+esc(blog))
	}

	type statItem struct {
		label string
		value int
	}
	statItems := []statItem{
		{"followers", p.Followers},
		{"following", p.Following},
		{"repos", len(data.Repos)},
		{"stars", data.TotalStars},
	}

	height := 200
	if bio != "" {
		height += 20
	}
	height += len(infoLines) * 20

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" xmlns:xlink="http://www.w3.org/1999/xlink" width="500" height="%d" viewBox="0 0 500 %d" fill="none">`+"\n", height, height)
	fmt.Fprintf(&b, `  <rect x="0.5" y="0.5" width="499" height="%d" rx="8" ry="8" fill="%s" stroke="%s" stroke-width="1"/>`+"\n", height-1, t.Bg, t.Border)

	// * Avatar with circular clip
	b.WriteString(`  <defs><clipPath id="avatar-clip"><circle cx="60" cy="60" r="35"/></clipPath></defs>` + "\n")
	fmt.Fprintf(&b, `  <circle cx="60" cy="60" r="37" stroke="%s" stroke-width="2.5" fill="none"/>`+"\n", t.AreaStroke)
	fmt.Fprintf(&b, `  <image x="25" y="25" width="70" height="70" href="%s" clip-path="url(#avatar-clip)" preserveAspectRatio="xMidYMid slice"/>`+"\n", esc(p.AvatarURL))

	fmt.Fprintf(&b, `  <text x="115" y="45" font-size="20" font-weight="700" fill="%s" font-family="%s">%s</text>`+"\n", t.Title, fontFamily, name)
	fmt.Fprintf(&b, `  <text x="115" y="68" font-size="13" fill="%s" font-family="%s">@%s</text>`+"\n", t.AreaStroke, fontFamily, esc(p.Login))

	if bio != "" {
		fmt.Fprintf(&b, `  <text x="115" y="90" font-size="12" fill="%s" font-family="%s">%s</text>`+"\n", t.Text, fontFamily, bio)
	}

	infoStartY := 105
	if bio != "" {
		infoStartY = 120
	}
	for i, line := range infoLines {
		fmt.Fprintf(&b, `  <text x="25" y="%d" font-size="12" fill="%s" font-family="%s">%s</text>`+"\n", infoStartY+i*20, t.Text, fontFamily, line)
	}

	fmt.Fprintf(&b, `  <g transform="translate(0, %d)">`+"\n", height-55)
	fmt.Fprintf(&b, `    <line x1="24" y1="0" x2="476" y2="0" stroke="%s" stroke-width="1"/>`+"\n", t.GridColor)
	for i, s := range statItems {
		fmt.Fprintf(&b, `    <g transform="translate(%d, 28)">`+"\n", 25+i*115)
		fmt.Fprintf(&b, `      <text x="0" y="0" font-size="16" font-weight="700" fill="%s" font-family="%s">%s</text>`+"\n", t.Title, fontFamily, formatNum(s.value))
		fmt.Fprintf(&b, `      <text x="0" y="18" font-size="11" fill="%s" font-family="%s">%s</text>`+"\n", t.Subtext, fontFamily, s.label)
		b.WriteString("    </g>\n")
	}
	b.WriteString("  </g>\n")

	fmt.Fprintf(&b, `  <text x="476" y="68" text-anchor="end" font-size="11" fill="%s" font-family="%s">Joined %d (%dy ago)</text>`+"\n", t.Subtext, fontFamily, joinYear, yearsAgo)
	b.WriteString("</svg>")
	return b.String()
}

// ──────────────── language cards ────────────────

func LanguagesByRepoCard(data *stats.ProfileData, t Theme) string {
	entries := topEntries(data.Languages.ByRepoCount, 6)
	return languageBarCard("Top Languages by Repo", entries, false, t)
}

func LanguagesByCommitCard(data *stats.ProfileData, t Theme) string {
	entries := topEntries(data.CommitsByLanguage, 6)

	hasData := len(entries) > 0
	if !hasData {
		entries = []langEntry{
			{"JavaScript", 40}, {"TypeScript", 25}, {"Python", 18},
			{"HTML", 10}, {"CSS", 7},
		}
	}
	return languageBarCard("Top Languages by Commit", entries, !hasData, t)
}

func languageBarCard(title string, entries []langEntry, preview bool, t Theme) string {
	total := 0
	for _, e := range entries {
		total += e.value
	}
	if total == 0 {
		total = 1
	}

	const (
		barW = 340.0
		rowH = 36
	)
	height := 80 + len(entries)*rowH + 20

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="400" height="%d" viewBox="0 0 400 %d" fill="none">`+"\n", height, height)
	fmt.Fprintf(&b, `  <rect x="0.5" y="0.5" width="399" height="%d" rx="8" ry="8" fill="%s" stroke="%s" stroke-width="1"/>`+"\n", height-1, t.Bg, t.Border)
	fmt.Fprintf(&b, `  <text x="24" y="35" font-size="16" font-weight="700" fill="%s" font-family="%s">%s</text>`+"\n", t.Title, fontFamily, title)
	fmt.Fprintf(&b, `  <rect x="25" y="52" width="%.0f" height="10" rx="5" fill="%s"/>`+"\n", barW, t.GridColor)

	// * Stacked progress bar segments
	barX := 25.0
	for i, e := range entries {
		w := float64(e.value) / float64(total) * barW
		fmt.Fprintf(&b, `  <rect x="%.2f" y="52" width="%.2f" height="10" rx="5" fill="%s"/>`+"\n", barX, math.Max(w, 2), t.ChartColors[i%len(t.ChartColors)])
		barX += w
	}

	for i, e := range entries {
		pct := float64(e.value) / float64(total) * 100
		y := 88 + i*rowH
		color := t.ChartColors[i%len(t.ChartColors)]
		fmt.Fprintf(&b, `  <g transform="translate(0, %d)">`+"\n", y)
		fmt.Fprintf(&b, `    <circle cx="35" cy="0" r="6" fill="%s"/>`+"\n", color)
		fmt.Fprintf(&b, `    <text x="50" y="1" font-size="13" fill="%s" dominant-baseline="middle" font-family="%s">%s</text>`+"\n", t.Text, fontFamily, esc(e.name))
		fmt.Fprintf(&b, `    <text x="365" y="1" font-size="13" fill="%s" font-weight="600" dominant-baseline="middle" text-anchor="end" font-family="%s">%.1f%%</text>`+"\n", t.Title, fontFamily, pct)
		b.WriteString("  </g>\n")
	}

	if preview {
		fmt.Fprintf(&b, `  <text x="200" y="%d" text-anchor="middle" font-size="11" fill="%s" font-family="%s" font-style="italic">No recent push events — preview data</text>`+"\n", height-12, t.Subtext, fontFamily)
	}

	b.WriteString("</svg>")
	return b.String()
}

// ──────────────── commits by hour ────────────────

func CommitsByHourCard(data *stats.ProfileData, t Theme) string {
	hours := data.HourlyCommits

	hasData := false
	for _, c := range hours {
		if c > 0 {
			hasData = true
			break
		}
	}

	display := hours
	if !hasData {
		for h := range display {
			display[h] = int(math.Round(math.Sin((float64(h)-6)*0.5)*3 + 4))
		}
	}

	maxCount := 1
	for _, c := range display {
		if c > maxCount {
			maxCount = c
		}
	}

	const (
		width  = 500
		height = 240
		chartX = 45.0
		chartY = 50.0
		chartH = 140.0
	)
	chartW := float64(width) - chartX - 20
	barW := chartW/24 - 2

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" fill="none">`+"\n", width, height, width, height)
	fmt.Fprintf(&b, `  <rect x="0.5" y="0.5" width="%d" height="%d" rx="8" ry="8" fill="%s" stroke="%s" stroke-width="1"/>`+"\n", width-1, height-1, t.Bg, t.Border)
	fmt.Fprintf(&b, `  <text x="24" y="32" font-size="16" font-weight="700" fill="%s" font-family="%s">Commits by Hour</text>`+"\n", t.Title, fontFamily)

	// * Y-axis grid lines and tick values
	for _, pct := range []float64{0, 0.25, 0.5, 0.75, 1} {
		y := chartY + chartH*(1-pct)
		val := int(math.Round(float64(maxCount) * pct))
		fmt.Fprintf(&b, `  <line x1="%.0f" y1="%.2f" x2="%.2f" y2="%.2f" stroke="%s" stroke-width="0.5" stroke-dasharray="4,4"/>`+"\n", chartX, y, chartX+chartW, y, t.GridColor)
		fmt.Fprintf(&b, `  <text x="%.0f" y="%.2f" font-size="10" fill="%s" text-anchor="end" font-family="%s">%d</text>`+"\n", chartX-6, y+4, t.Subtext, fontFamily, val)
	}

	opacity := "1"
	if !hasData {
		opacity = "0.35"
	}
	for i, count := range display {
		barH := float64(count) / float64(maxCount) * chartH
		x := chartX + float64(i)*(chartW/24) + 1
		y := chartY + chartH - barH
		fmt.Fprintf(&b, `  <rect x="%.2f" y="%.2f" width="%.2f" height="%.2f" rx="2" fill="%s" opacity="%s"/>`+"\n", x, y, barW, barH, t.BarFill, opacity)
	}

	// * X-axis labels every 3 hours
	for _, h := range []int{0, 3, 6, 9, 12, 15, 18, 21} {
		x := chartX + float64(h)*(chartW/24) + barW/2
		fmt.Fprintf(&b, `  <text x="%.2f" y="%.0f" font-size="11" fill="%s" text-anchor="middle" font-family="%s">%d</text>`+"\n", x, chartY+chartH+18, t.Text, fontFamily, h)
	}
	fmt.Fprintf(&b, `  <text x="%.2f" y="%.0f" font-size="10" fill="%s" text-anchor="end" font-family="%s">per day hour</text>`+"\n", chartX+chartW, chartY+chartH+18, t.Subtext, fontFamily)

	if !hasData {
		fmt.Fprintf(&b, `  <text x="%d" y="%d" text-anchor="middle" font-size="11" fill="%s" font-family="%s" font-style="italic">No recent push events — preview data</text>`+"\n", width/2, height-8, t.Subtext, fontFamily)
	}

	b.WriteString("</svg>")
	return b.String()
}

// ──────────────── repo table ────────────────

func RepoTableCard(data *stats.ProfileData, t Theme) string {
	topRepos := make([]stats.Repo, len(data.Repos))
	copy(topRepos, data.Repos)
	sort.SliceStable(topRepos, func(i, j int) bool {
		return topRepos[i].Stars > topRepos[j].Stars
	})
	if len(topRepos) > 6 {
		topRepos = topRepos[:6]
	}

	const (
		rowH    = 30
		headerH = 35
		width   = 500
	)
	height := 75 + headerH + len(topRepos)*rowH + 15

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d" fill="none">`+"\n", width, height, width, height)
	fmt.Fprintf(&b, `  <rect x="0.5" y="0.5" width="%d" height="%d" rx="8" ry="8" fill="%s" stroke="%s" stroke-width="1"/>`+"\n", width-1, height-1, t.Bg, t.Border)
	fmt.Fprintf(&b, `  <text x="24" y="32" font-size="16" font-weight="700" fill="%s" font-family="%s">Highlighted Repositories</text>`+"\n", t.Title, fontFamily)
	fmt.Fprintf(&b, `  <text x="24" y="52" font-size="12" fill="%s" font-family="%s">Top public repos by stars</text>`+"\n", t.Subtext, fontFamily)

	headerMid := 64 + headerH/2 + 1
	fmt.Fprintf(&b, `  <rect x="25" y="64" width="%d" height="%d" rx="4" fill="%s"/>`+"\n", width-50, headerH, t.GridColor)
	fmt.Fprintf(&b, `  <text x="40" y="%d" font-size="11" font-weight="700" fill="%s" dominant-baseline="middle" text-anchor="start" font-family="%s" letter-spacing="0.08em">REPO</text>`+"\n", headerMid, t.Subtext, fontFamily)
	fmt.Fprintf(&b, `  <text x="230" y="%d" font-size="11" font-weight="700" fill="%s" dominant-baseline="middle" text-anchor="start" font-family="%s" letter-spacing="0.08em">LANGUAGE</text>`+"\n", headerMid, t.Subtext, fontFamily)
	fmt.Fprintf(&b, `  <text x="370" y="%d" font-size="11" font-weight="700" fill="%s" dominant-baseline="middle" text-anchor="end" font-family="%s" letter-spacing="0.08em">⭐ STARS</text>`+"\n", headerMid, t.Subtext, fontFamily)
	fmt.Fprintf(&b, `  <text x="456" y="%d" font-size="11" font-weight="700" fill="%s" dominant-baseline="middle" text-anchor="end" font-family="%s" letter-spacing="0.08em">🍴 FORKS</text>`+"\n", headerMid, t.Subtext, fontFamily)

	for i, repo := range topRepos {
		y := 64 + headerH + i*rowH
		if i%2 != 0 {
			fmt.Fprintf(&b, `  <rect x="25" y="%d" width="%d" height="%d" fill="%s" opacity="0.4"/>`+"\n", y, width-50, rowH, t.GridColor)
		}
		mid := y + rowH/2 + 1
		lang := repo.Language
		if lang == "" {
			lang = "—"
		}
		fmt.Fprintf(&b, `  <text x="40" y="%d" font-size="13" fill="%s" font-weight="500" dominant-baseline="middle" font-family="%s">%s</text>`+"\n", mid, t.AreaStroke, fontFamily, esc(truncate(repo.Name, 25)))
		fmt.Fprintf(&b, `  <text x="230" y="%d" font-size="12" fill="%s" dominant-baseline="middle" font-family="%s">%s</text>`+"\n", mid, t.Text, fontFamily, esc(lang))
		fmt.Fprintf(&b, `  <text x="370" y="%d" font-size="13" fill="%s" font-weight="600" dominant-baseline="middle" text-anchor="end" font-family="%s">%s</text>`+"\n", mid, t.Title, fontFamily, formatGrouped(repo.Stars))
		fmt.Fprintf(&b, `  <text x="456" y="%d" font-size="13" fill="%s" font-weight="600" dominant-baseline="middle" text-anchor="end" font-family="%s">%s</text>`+"\n", mid, t.Title, fontFamily, formatGrouped(repo.Forks))
	}

	b.WriteString("</svg>")
	return b.String()
}

// ──────────────── error card ────────────────

// * ErrorCard makes a fatal condition visible even when only an <img> tag is
// * embedded: the image itself shows the message.
func ErrorCard(message string) string {
	var b strings.Builder
	b.WriteString(`<svg xmlns="http://www.w3.org/2000/svg" width="400" height="120" viewBox="0 0 400 120" fill="none">` + "\n")
	b.WriteString(`  <rect x="0.5" y="0.5" width="399" height="119" rx="8" ry="8" fill="#0d1117" stroke="#f85149" stroke-width="1"/>` + "\n")
	fmt.Fprintf(&b, `  <text x="200" y="45" text-anchor="middle" font-size="14" font-weight="700" fill="#f85149" font-family="%s">⚠️ Error</text>`+"\n", fontFamily)
	fmt.Fprintf(&b, `  <text x="200" y="75" text-anchor="middle" font-size="12" fill="#8b949e" font-family="%s">%s</text>`+"\n", fontFamily, esc(message))
	b.WriteString("</svg>")
	return b.String()
}
