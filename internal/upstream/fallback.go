package upstream

// DefaultMenuCity is used when a menu is requested without a city.
const DefaultMenuCity = "Haridwar"

// fallbackMenus are the fixed Haridwar menus served when the remote menu
// endpoint is unreachable, keyed by vendor id.
var fallbackMenus = map[int][]Dish{
	1: {
		{DishID: 1, DishName: "Chole Bhature", Price: 120},
		{DishID: 2, DishName: "Lassi", Price: 60},
		{DishID: 3, DishName: "Aloo Paratha", Price: 80},
	},
	2: {
		{DishID: 4, DishName: "Ganga Aarti Thali", Price: 250},
		{DishID: 5, DishName: "Dal Makhani", Price: 180},
		{DishID: 6, DishName: "Butter Naan", Price: 50},
	},
	3: {
		{DishID: 7, DishName: "Puri Sabzi", Price: 100},
		{DishID: 8, DishName: "Kachori", Price: 40},
		{DishID: 9, DishName: "Jalebi", Price: 80},
	},
	4: {
		{DishID: 10, DishName: "Gol Gappe", Price: 50},
		{DishID: 11, DishName: "Raj Kachori", Price: 80},
		{DishID: 12, DishName: "Dahi Bhalla", Price: 70},
	},
	5: {
		{DishID: 13, DishName: "Thali", Price: 200},
		{DishID: 14, DishName: "Paneer Curry", Price: 160},
		{DishID: 15, DishName: "Roti", Price: 20},
	},
}

// FallbackMenu returns the fixed menu for a vendor, defaulting to vendor 1
// for vendors without one.
func FallbackMenu(vendorID int) []Dish {
	if menu, ok := fallbackMenus[vendorID]; ok {
		return menu
	}
	return fallbackMenus[1]
}
