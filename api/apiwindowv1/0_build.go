package apiwindowv1

import (
	"github.com/fulldump/box"

	"github.com/fulldump/ddrmem/service"
)

func BuildV1Window(v1 *box.R, s service.Servicer) *box.R {

	windows := v1.Resource("/windows").
		WithActions(
			box.Get(listWindows).WithName("listWindows"),
			box.Post(createWindow).WithName("createWindow"),
		)

	v1.Resource("/windows/{windowName}").
		WithActions(
			box.Get(getWindow).WithName("getWindow"),
			box.ActionPost(allocate).WithName("allocate"),
			box.ActionPost(free).WithName("free"),
			box.ActionPost(find).WithName("find"),
			box.ActionPost(dropWindow).WithName("drop"),
		)

	v1.Resource("/windows/{windowName}/dump").
		WithActions(
			box.Get(dump).WithName("dump"),
		)

	return windows
}
