package normalize

import "strings"

// rule maps a set of keywords to a label. Tables of rules are scanned in
// order and the first rule with a keyword contained in the input wins.
type rule struct {
	keywords []string
	label    string
}

var categoryRules = []rule{
	{[]string{"salesforce", "dynamics", "hubspot", "pipedrive"}, "CRM Platforms"},
	{[]string{"enterprise", "empresarial"}, "Enterprise CRM"},
	{[]string{"pyme", "startup", "small"}, "SMB CRM"},
	{[]string{"integration", "integración", "api"}, "Integrations"},
	{[]string{"config", "setup", "instalación"}, "Configuration"},
	{[]string{"pricing", "precio", "costo"}, "Pricing and Plans"},
	{[]string{"feature", "característica", "funcionalidad"}, "Features"},
	{[]string{"security", "seguridad", "auth"}, "Security"},
	{[]string{"report", "analytics", "análisis"}, "Reports and Analytics"},
	{[]string{"migration", "migración"}, "Data Migration"},
}

var subtopicIconRules = []rule{
	{[]string{"config", "setup", "configuración"}, "⚙️"},
	{[]string{"api", "endpoint", "rest"}, "🔌"},
	{[]string{"database", "db", "datos"}, "🗄️"},
	{[]string{"security", "auth", "seguridad"}, "🔐"},
	{[]string{"test", "testing", "prueba"}, "🧪"},
	{[]string{"deploy", "deployment", "despliegue"}, "🚀"},
	{[]string{"monitor", "monitoring", "monitoreo"}, "📊"},
	{[]string{"performance", "rendimiento", "optimización"}, "⚡"},
	{[]string{"error", "bug", "debug"}, "🐛"},
	{[]string{"docs", "documentation", "documentación"}, "📚"},
	{[]string{"integration", "integración"}, "🔗"},
	{[]string{"migration", "migración"}, "📦"},
	{[]string{"backup", "respaldo"}, "💾"},
	{[]string{"cloud", "nube"}, "☁️"},
	{[]string{"mobile", "móvil"}, "📱"},
	{[]string{"email", "correo"}, "📧"},
	{[]string{"report", "reporte", "informe"}, "📈"},
	{[]string{"user", "usuario"}, "👤"},
	{[]string{"team", "equipo"}, "👥"},
	{[]string{"workflow", "flujo"}, "🔄"},
}

// sectionIcons is keyed by exact section id.
var sectionIcons = []struct {
	id   string
	icon string
}{
	{"crm-systems", "🏢"},
	{"integration", "🔗"},
	{"configuration", "⚙️"},
	{"security", "🔐"},
	{"migration", "📦"},
	{"analytics", "📊"},
	{"automation", "🤖"},
	{"mobile", "📱"},
	{"support", "🎧"},
	{"training", "🎓"},
}

const (
	DefaultSubtopicIcon = "📋"
	DefaultSectionIcon  = "📁"
)

// firstMatch returns the label of the first rule with a keyword contained in
// s (case-insensitive).
func firstMatch(rules []rule, s string) (string, bool) {
	lower := strings.ToLower(s)
	for _, r := range rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.label, true
			}
		}
	}
	return "", false
}

// SubtopicIcon picks an icon for a subtopic title.
func SubtopicIcon(title string) string {
	if icon, ok := firstMatch(subtopicIconRules, title); ok {
		return icon
	}
	return DefaultSubtopicIcon
}

// SectionIcon returns the icon registered for a section id.
func SectionIcon(id string) string {
	for _, e := range sectionIcons {
		if e.id == id {
			return e.icon
		}
	}
	return DefaultSectionIcon
}

// Category derives the grouping label for an item subtitle: the first
// matching keyword category, else the text before the first hyphen, else
// "General".
func Category(subtitle string) string {
	if subtitle == "" {
		return GeneralCategory
	}
	if label, ok := firstMatch(categoryRules, subtitle); ok {
		return label
	}
	if head := beforeHyphen(subtitle); head != "" {
		return head
	}
	return GeneralCategory
}

// GeneralCategory is the fallback category label.
const GeneralCategory = "General"

func beforeHyphen(s string) string {
	head, _, _ := strings.Cut(s, "-")
	return strings.TrimSpace(head)
}
