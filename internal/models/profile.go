package models

// Profile is the single user profile document. It is persisted as one JSON
// blob under a fixed key rather than as columns, so the stored shape matches
// exactly what the frontend reads and writes.
type Profile struct {
	Name         string   `json:"name"`
	Email        string   `json:"email"`
	Phone        string   `json:"phone"`
	Age          int      `json:"age"`
	Gender       string   `json:"gender"`
	Language     string   `json:"language"`
	State        string   `json:"state"`
	City         string   `json:"city"`
	Preferences  []string `json:"preferences"`
	DietType     string   `json:"dietType"`
	Bio          string   `json:"bio"`
	JoinDate     string   `json:"joinDate"`
	ProfileImage string   `json:"profileImage"`

	// Running totals updated on each placed order.
	OrdersPlaced     int     `json:"ordersPlaced"`
	RestaurantsTried int     `json:"restaurantsTried"`
	AvgRating        float64 `json:"avgRating"`
	TotalSpent       int     `json:"totalSpent"`
}

const (
	placeholderName  = "User Profile"
	placeholderEmail = "user@example.com"

	defaultAvatarURL = "https://4.bp.blogspot.com/-zsbDeAUd8aY/US7F0ta5d9I/AAAAAAAAEKY/UL2AAhHj6J8/s1600/facebook-default-no-profile-pic.jpg"
)

// TemplateProfile returns the placeholder document a fresh or reset profile
// starts from. It never satisfies Complete.
func TemplateProfile() Profile {
	return Profile{
		Name:         placeholderName,
		Email:        placeholderEmail,
		Phone:        "+91 XXXXXXXXXX",
		Preferences:  []string{},
		Bio:          "Tell us about yourself...",
		JoinDate:     "January 2024",
		ProfileImage: defaultAvatarURL,
	}
}

// Complete reports whether the profile carries real user data. Name and email
// must differ from the template placeholders, and the demographic fields the
// recommendation flow depends on must all be filled in.
func (p Profile) Complete() bool {
	return p.Name != "" && p.Name != placeholderName &&
		p.Email != "" && p.Email != placeholderEmail &&
		p.Age != 0 &&
		p.Gender != "" &&
		p.Language != "" &&
		p.State != "" &&
		p.City != ""
}
