package entity

import "strings"

// iconAssets maps the finite set of icon keys used by the seed dataset and
// the admin editors to their asset paths. Lookup is a tagged table, not
// reflection; unknown keys resolve to the fallback entry.
var iconAssets = map[string]string{
	"HardHat":       "/assets/icons/hard-hat.svg",
	"Wrench":        "/assets/icons/wrench.svg",
	"Tv":            "/assets/icons/tv.svg",
	"Hammer":        "/assets/icons/hammer.svg",
	"Zap":           "/assets/icons/zap.svg",
	"Truck":         "/assets/icons/truck.svg",
	"Layers":        "/assets/icons/layers.svg",
	"Home":          "/assets/icons/home.svg",
	"Waves":         "/assets/icons/waves.svg",
	"Flame":         "/assets/icons/flame.svg",
	"Sun":           "/assets/icons/sun.svg",
	"Leaf":          "/assets/icons/leaf.svg",
	"TreeDeciduous": "/assets/icons/tree.svg",
	"Shovel":        "/assets/icons/shovel.svg",
	"Bug":           "/assets/icons/bug.svg",
	"Sparkles":      "/assets/icons/sparkles.svg",
	"Brush":         "/assets/icons/brush.svg",
	"Key":           "/assets/icons/key.svg",
	"Camera":        "/assets/icons/camera.svg",
	"ChefHat":       "/assets/icons/chef-hat.svg",
	"Car":           "/assets/icons/car.svg",
	"Anchor":        "/assets/icons/anchor.svg",
	"Shirt":         "/assets/icons/shirt.svg",
	"Wind":          "/assets/icons/wind.svg",
	"Droplets":      "/assets/icons/droplets.svg",
	"Circle":        "/assets/icons/circle.svg",
	"HelpCircle":    "/assets/icons/help-circle.svg",
}

// iconFallback is returned for icon keys outside the registry.
const iconFallback = "/assets/icons/help-circle.svg"

// ResolveIcon maps an icon reference to a renderable asset. Image URLs and
// data URIs pass through untouched so admins can upload custom icons.
func ResolveIcon(name string) string {
	if strings.HasPrefix(name, "http") || strings.HasPrefix(name, "data:image") {
		return name
	}
	if asset, ok := iconAssets[name]; ok {
		return asset
	}

	return iconFallback
}

// KnownIcon reports whether name is a registered icon key.
func KnownIcon(name string) bool {
	_, ok := iconAssets[name]

	return ok
}
