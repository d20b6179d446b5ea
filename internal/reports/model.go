package reports

// PeriodStats aggregates completed orders and expenses over one time
// window. Capital is the cost portion of the revenue, what the sold
// goods had tied up before the sale recovered it.
type PeriodStats struct {
	Profit     int `json:"profit"`
	Capital    int `json:"capital"`
	Expenses   int `json:"expenses"`
	OrderCount int `json:"orderCount"`
}

type Totals struct {
	TotalProfit  int `json:"totalProfit"`
	TotalCapital int `json:"totalCapital"`
	TotalOrders  int `json:"totalOrders"`
}

type DashboardStats struct {
	Today   PeriodStats `json:"today"`
	Weekly  PeriodStats `json:"weekly"`
	Monthly PeriodStats `json:"monthly"`
	Totals  Totals      `json:"totals"`
}

type MonthlyStats struct {
	Month       int    `json:"month"`
	MonthName   string `json:"monthName"`
	EnMonthName string `json:"enMonthName"`
	Profit      int    `json:"profit"`
	Capital     int    `json:"capital"`
	Expenses    int    `json:"expenses"`
	Revenue     int    `json:"revenue"`
	OrderCount  int    `json:"orderCount"`
}

// Display names rendered directly by the client, indexed by month-1.
var arMonthNames = [12]string{
	"كانون الثاني", "شباط", "آذار", "نيسان", "أيار", "حزيران",
	"تموز", "آب", "أيلول", "تشرين الأول", "تشرين الثاني", "كانون الأول",
}

var enMonthNames = [12]string{
	"January", "February", "March", "April", "May", "June",
	"July", "August", "September", "October", "November", "December",
}
