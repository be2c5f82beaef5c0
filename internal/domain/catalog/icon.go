package catalog

// DefaultIcon is used when a product is saved without an icon
const DefaultIcon = "🌿"

// Icons lists the selectable product icons in display order
var Icons = []string{
	// flower
	"🌿", "🍁", "🌸", "🍀", "🎋", "🌺", "🍄", "🌵", "🎄", "🌲", "🍃", "☘️", "🌱",
	// edibles
	"🍪", "🍬", "🍫", "🍩", "🍦", "🧁", "🍮", "🍭",
	// concentrates
	"💧", "🧪", "💎", "🔮", "⚗️", "🧴", "💊", "🏺", "🫙",
	// accessories
	"📦", "🛍️", "⚙️", "🔧", "🛠️", "🔥", "💨", "⚡", "🔋",
}

var iconSet = func() map[string]struct{} {
	m := make(map[string]struct{}, len(Icons))
	for _, icon := range Icons {
		m[icon] = struct{}{}
	}
	return m
}()

// IsValidIcon reports whether icon is one of the selectable icons
func IsValidIcon(icon string) bool {
	_, ok := iconSet[icon]
	return ok
}
