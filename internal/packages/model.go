package packages

import "time"

type Package struct {
	ID           int64          `json:"id"`
	Name         string         `json:"name"`
	SellingPrice int            `json:"sellingPrice"`
	Items        []*PackageItem `json:"items"`
	// Available is derived from live component stock, never stored.
	Available int       `json:"available"`
	CreatedAt time.Time `json:"createdAt"`
}

type PackageItem struct {
	ID           int64  `json:"id"`
	PackageID    int64  `json:"packageId"`
	ProductID    int64  `json:"productId"`
	ProductName  string `json:"productName"`
	Quantity     int    `json:"quantity"`
	ProductStock int    `json:"productStock"`
}

type CreatePackageInput struct {
	Name         string                   `json:"name"`
	SellingPrice int                      `json:"sellingPrice"`
	Items        []CreatePackageItemInput `json:"items"`
}

type CreatePackageItemInput struct {
	ProductID int64 `json:"productId"`
	Quantity  int   `json:"quantity"`
}

// Availability returns how many units of the package can be assembled
// from the current component stocks: the minimum over items of
// floor(stock / quantity).
func Availability(items []*PackageItem) int {
	if len(items) == 0 {
		return 0
	}

	available := -1
	for _, item := range items {
		if item.Quantity <= 0 {
			return 0
		}
		n := item.ProductStock / item.Quantity
		if available < 0 || n < available {
			available = n
		}
	}
	return available
}
