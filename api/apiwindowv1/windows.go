package apiwindowv1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/fulldump/box"

	"github.com/fulldump/ddrmem/service"
)

type createWindowRequest struct {
	Name  string `json:"name"`
	Base  uint64 `json:"base"`
	Total uint64 `json:"total"`
}

func listWindows(ctx context.Context) ([]*service.Window, error) {
	return GetServicer(ctx).ListWindows()
}

func createWindow(ctx context.Context, w http.ResponseWriter, input *createWindowRequest) (*service.Window, error) {

	if input.Name == "" {
		return nil, fmt.Errorf("%w: window name is required", service.ErrInvalidRequest)
	}

	window, err := GetServicer(ctx).CreateWindow(input.Name, input.Base, input.Total)
	if err != nil {
		return nil, err
	}

	w.WriteHeader(http.StatusCreated)
	return window, nil
}

func getWindow(ctx context.Context) (*service.Window, error) {
	windowName := box.GetUrlParameter(ctx, "windowName")
	return GetServicer(ctx).GetWindow(windowName)
}

// dropWindow deletes the window. ?force=true drops it even with live blocks.
func dropWindow(ctx context.Context, w http.ResponseWriter, r *http.Request) error {
	windowName := box.GetUrlParameter(ctx, "windowName")
	force := r.URL.Query().Get("force") == "true"
	return GetServicer(ctx).DeleteWindow(windowName, force)
}

func dump(ctx context.Context, w http.ResponseWriter) error {
	windowName := box.GetUrlParameter(ctx, "windowName")
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	return GetServicer(ctx).Dump(windowName, w)
}
