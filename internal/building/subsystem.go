package building

// Category is a top-level energy-consuming or -producing group
type Category string

const (
	CategoryHVAC          Category = "HVAC"
	CategoryLighting      Category = "Lighting"
	CategoryKitchen       Category = "Kitchen"
	CategoryLaundry       Category = "Laundry"
	CategoryEntertainment Category = "Entertainment"
	CategoryEV            Category = "EV Charging"
	CategorySolar         Category = "Solar"
)

// Subsystem identifies one leaf of the subsystem hierarchy, e.g.
// HVAC/Chiller. Component is empty for categories with no breakdown.
type Subsystem struct {
	Category  Category
	Component string
}

// Path returns the hierarchical identifier, "Category/Component" or
// just "Category" for single-leaf categories.
func (s Subsystem) Path() string {
	if s.Component == "" {
		return string(s.Category)
	}
	return string(s.Category) + "/" + s.Component
}

// Generation reports whether the subsystem produces rather than
// consumes power. Generation values are signed negative in results.
func (s Subsystem) Generation() bool {
	return s.Category == CategorySolar
}

// Canonical subsystem leaves of the simulated building.
var (
	SubChiller    = Subsystem{CategoryHVAC, "Chiller"}
	SubPump       = Subsystem{CategoryHVAC, "Pump"}
	SubFan        = Subsystem{CategoryHVAC, "Fan"}
	SubLighting   = Subsystem{CategoryLighting, ""}
	SubFridge     = Subsystem{CategoryKitchen, "Fridge"}
	SubDishwasher = Subsystem{CategoryKitchen, "Dishwasher"}
	SubMicrowave  = Subsystem{CategoryKitchen, "Microwave"}
	SubOven       = Subsystem{CategoryKitchen, "Oven"}
	SubWasher     = Subsystem{CategoryLaundry, "Washer"}
	SubDryer      = Subsystem{CategoryLaundry, "Dryer"}
	SubTV         = Subsystem{CategoryEntertainment, "TV"}
	SubComputer   = Subsystem{CategoryEntertainment, "Computer"}
	SubEVCharger  = Subsystem{CategoryEV, "Charger"}
	SubSolar      = Subsystem{CategorySolar, ""}
)
