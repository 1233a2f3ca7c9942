package server

import (
	"github.com/labstack/echo/v4"
	"github.com/mdouchement/bigbluebutton/internal/bbberror"
	"github.com/mdouchement/bigbluebutton/internal/database"
	"github.com/mdouchement/bigbluebutton/internal/model"
	"github.com/mdouchement/bigbluebutton/pkg/libbbb"
)

// hook contains all webhook handlers.
type hook struct {
	db database.Client
}

///// Create
////
//

type hookParams struct {
	CallbackURL string `query:"callbackURL"`
	MeetingID   string `query:"meetingID"`
	GetRaw      bool   `query:"getRaw"`
}

// Create registers a callback URL, globally or for a single meeting.
// Registering twice the same callback returns the existing hook.
func (h *hook) Create(c echo.Context) error {
	var params hookParams
	if err := c.Bind(&params); err != nil {
		return err
	}

	if params.CallbackURL == "" {
		return bbberror.MissingParam("CallbackURL", "You must specify a callbackURL in the parameters.")
	}

	hk, err := h.db.FindHookByCallback(params.CallbackURL, params.MeetingID)
	if err == nil {
		return render(c, libbbb.HooksCreateResult{
			Response: success("duplicateWarning", "There is already a hook for this callback URL."),
			HookID:   hk.ID,
			RawData:  hk.RawData,
		})
	}
	if !h.db.IsNotFound(err) {
		return err
	}

	hk = &model.Hook{
		CallbackURL: params.CallbackURL,
		MeetingID:   params.MeetingID,
		RawData:     params.GetRaw,
	}
	if err = h.db.Save(hk); err != nil {
		return err
	}

	return render(c, libbbb.HooksCreateResult{
		Response: success("", ""),
		HookID:   hk.ID,
		RawData:  hk.RawData,
	})
}

///// List
////
//

// List returns the global hooks and the hooks of the given meeting.
func (h *hook) List(c echo.Context) error {
	hooks, err := h.db.FindHooks(c.QueryParam("meetingID"))
	if err != nil {
		return err
	}

	r := libbbb.HooksListResult{
		Response: success("", ""),
	}
	for _, hk := range hooks {
		r.Hooks = append(r.Hooks, hk.Serialize())
	}

	return render(c, r)
}

///// Destroy
////
//

// Destroy removes a hook.
func (h *hook) Destroy(c echo.Context) error {
	id := c.QueryParam("hookID")
	if id == "" {
		return bbberror.MissingParam("HookID", "You must specify a hookID in the parameters.")
	}

	hk, err := h.db.FindHook(id)
	if err != nil {
		if h.db.IsNotFound(err) {
			return bbberror.New("destroyMissingHook", "The hook informed was not found.")
		}
		return err
	}

	if err = h.db.Delete(hk); err != nil {
		return err
	}

	return render(c, libbbb.HooksDestroyResult{
		Response: success("", ""),
		Removed:  true,
	})
}
