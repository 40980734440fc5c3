package apiwindowv1

import (
	"context"
	"net/http"

	"github.com/fulldump/box"

	"github.com/fulldump/ddrmem/service"
)

type allocateRequest struct {
	Size   uint64 `json:"size"`
	Strict bool   `json:"strict"`
	Label  string `json:"label"`
}

func allocate(ctx context.Context, w http.ResponseWriter, input *allocateRequest) (*service.Reservation, error) {

	windowName := box.GetUrlParameter(ctx, "windowName")

	reservation, err := GetServicer(ctx).Allocate(windowName, input.Size, input.Strict, input.Label)
	if err != nil {
		return nil, err
	}

	w.WriteHeader(http.StatusCreated)
	return reservation, nil
}

type freeRequest struct {
	Address uint64 `json:"address"`
}

func free(ctx context.Context, input *freeRequest) (*service.Reservation, error) {
	windowName := box.GetUrlParameter(ctx, "windowName")
	return GetServicer(ctx).Free(windowName, input.Address)
}
