package response

import (
	"hotelcart/internal/pkg/errs"
	"hotelcart/internal/usecase/queries"

	"github.com/jinzhu/copier"
)

type RoomResponse struct {
	ID               string `json:"id"`
	Name             string `json:"name"`
	Description      string `json:"description"`
	Capacity         int32  `json:"capacity"`
	NightlyRateCents int64  `json:"nightlyRateCents"`
	Available        bool   `json:"available"`
}

type MenuItemResponse struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	Description    string `json:"description"`
	Category       string `json:"category"`
	UnitPriceCents int64  `json:"unitPriceCents"`
	Available      bool   `json:"available"`
}

type AddonResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"priceCents"`
}

func FromRoomViews(views []queries.RoomView) ([]RoomResponse, error) {
	resp := make([]RoomResponse, 0, len(views))
	if err := copier.Copy(&resp, views); err != nil {
		return nil, errs.Wrap(err, "failed to map room views")
	}
	return resp, nil
}

func FromMenuItemViews(views []queries.MenuItemView) ([]MenuItemResponse, error) {
	resp := make([]MenuItemResponse, 0, len(views))
	if err := copier.Copy(&resp, views); err != nil {
		return nil, errs.Wrap(err, "failed to map menu item views")
	}
	return resp, nil
}

func FromAddonViews(views []queries.AddonView) ([]AddonResponse, error) {
	resp := make([]AddonResponse, 0, len(views))
	if err := copier.Copy(&resp, views); err != nil {
		return nil, errs.Wrap(err, "failed to map add-on views")
	}
	return resp, nil
}
