package model

// Restaurant carries the static metadata served by the restaurant
// endpoint.  There is a single restaurant; nothing here touches the
// database.
type Restaurant struct {
	ID             uint64          `json:"id"`
	Name           string          `json:"name"`
	Address        string          `json:"address"`
	Phone          string          `json:"phone"`
	Email          string          `json:"email"`
	IsOpen         bool            `json:"isOpen"`
	Status         string          `json:"status"`
	OperatingHours []OperatingHour `json:"operatingHours"`
}

// OperatingHour is one day's opening window.  DayOfWeek follows the
// JavaScript convention (0 = Sunday) that the original frontend expects.
type OperatingHour struct {
	DayOfWeek int    `json:"day_of_week"`
	OpenTime  string `json:"open_time"`
	CloseTime string `json:"close_time"`
	IsClosed  bool   `json:"is_closed"`
}

// DefaultRestaurant returns the fixed metadata for the single
// restaurant this service fronts, open 17:00-22:00 every day.
func DefaultRestaurant() Restaurant {
	hours := make([]OperatingHour, 0, 7)
	for d := 0; d < 7; d++ {
		hours = append(hours, OperatingHour{
			DayOfWeek: d,
			OpenTime:  "17:00",
			CloseTime: "22:00",
			IsClosed:  false,
		})
	}
	return Restaurant{
		ID:             1,
		Name:           "Bayanihan Filipino Restaurant",
		Address:        "123 Main Street, Your City, State 12345",
		Phone:          "(555) 123-4567",
		Email:          "info@bayanihanrestaurant.com",
		IsOpen:         true,
		Status:         "open",
		OperatingHours: hours,
	}
}
