package upstream

// PredictRequest is the order profile sent to the performance model. Field
// names follow the remote API's column naming, values are raw form strings.
type PredictRequest struct {
	Distance      string `json:"Distance"`
	KPTDuration   string `json:"KPT_duration"`
	RiderWaitTime string `json:"Rider_wait_time"`
	OrderTime     string `json:"Order_time"`
}

// Prediction is the model's verdict on an order profile.
type Prediction struct {
	PredictedLabel  int     `json:"predicted_label"`
	Performance     string  `json:"performance"`
	Confidence      float64 `json:"confidence"`
	ProbabilityGood float64 `json:"probability_good"`
	Note            string  `json:"note,omitempty"`
}

// AnalyticsSummary holds the headline averages for the dashboard.
type AnalyticsSummary struct {
	AvgRating           float64 `json:"avg_rating"`
	AvgKPTDuration      float64 `json:"avg_kpt_duration"`
	AvgDistance         float64 `json:"avg_distance"`
	DeliverySuccessRate float64 `json:"delivery_success_rate"`
}

// Analytics is the aggregate dashboard document from /analyze.
type Analytics struct {
	Summary                 AnalyticsSummary `json:"summary"`
	PerformanceDistribution map[string]int   `json:"performance_distribution"`
	PeakHours               map[string]int   `json:"peak_hours"`
	TotalOrders             int              `json:"total_orders"`
	PredictionsMade         int              `json:"predictions_made"`
}

// FeatureWeight is one entry of the model's feature importance list.
type FeatureWeight struct {
	Feature    string  `json:"feature"`
	Importance float64 `json:"importance"`
}

// Customer is the transient customer payload submitted for recommendations.
type Customer struct {
	Age          int     `json:"age"`
	Gender       string  `json:"gender"`
	Language     string  `json:"language"`
	State        string  `json:"state"`
	City         string  `json:"city"`
	LoyaltyScore float64 `json:"loyalty_score"`
	Latitude     float64 `json:"latitude"`
	Longitude    float64 `json:"longitude"`
}

// Restaurant is one recommended restaurant.
type Restaurant struct {
	VendorID    int     `json:"vendor_id"`
	Name        string  `json:"name"`
	Cuisine     string  `json:"cuisine"`
	Rating      float64 `json:"rating"`
	Distance    float64 `json:"distance"`
	Latitude    float64 `json:"latitude"`
	Longitude   float64 `json:"longitude"`
	Probability float64 `json:"probability"`
}

// Recommendations is the response of POST /recommendations.
type Recommendations struct {
	Recommendations []Restaurant `json:"recommendations"`
	TotalFound      int          `json:"total_found"`
	City            string       `json:"city"`
}

// Dish is one menu entry.
type Dish struct {
	DishID   int    `json:"dish_id"`
	DishName string `json:"dish_name"`
	Price    int    `json:"price"`
}

// LineItem is a dish plus the quantity in the cart.
type LineItem struct {
	Dish
	Quantity int `json:"quantity"`
}

// Order is the snapshot submitted on placement.
type Order struct {
	VendorID   int        `json:"vendor_id"`
	VendorName string     `json:"vendor_name"`
	Items      []LineItem `json:"items"`
	TotalPrice int        `json:"total_price"`
}

// OrderReceipt acknowledges a placed order.
type OrderReceipt struct {
	Success bool   `json:"success"`
	OrderID string `json:"order_id"`
	Message string `json:"message"`
}
