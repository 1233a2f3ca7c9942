package server

import (
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/mdouchement/bigbluebutton/internal/bbberror"
	"github.com/mdouchement/bigbluebutton/internal/database"
	"github.com/mdouchement/bigbluebutton/internal/model"
	"github.com/mdouchement/bigbluebutton/pkg/libbbb"
)

// recording contains all recording handlers.
type recording struct {
	db database.Client
}

///// List
////
//

// List returns the recordings matching the meetingID, recordID and state filters.
// Without state filter, only the published and unpublished recordings are returned.
func (h *recording) List(c echo.Context) error {
	states := list(c.QueryParam("state"))
	if len(states) == 0 {
		states = []string{libbbb.RecordingStatePublished, libbbb.RecordingStateUnpublished}
	}
	for _, state := range states {
		if state == "any" {
			states = nil
			break
		}
	}

	recordings, err := h.db.FindRecordings(list(c.QueryParam("meetingID")), list(c.QueryParam("recordID")), states)
	if err != nil {
		return err
	}

	r := libbbb.GetRecordingsResult{
		Response: success("", ""),
	}
	if len(recordings) == 0 {
		r.Response = success("noRecordings", "There are no recordings for the meeting(s).")
	}

	base := baseURL(c)
	for _, recording := range recordings {
		r.Recordings = append(r.Recordings, recording.Serialize(base))
	}

	return render(c, r)
}

///// Publish
////
//

// Publish publishes or hides the given recordings.
func (h *recording) Publish(c echo.Context) error {
	ids := list(c.QueryParam("recordID"))
	if len(ids) == 0 {
		return bbberror.MissingRecordID()
	}

	publish, err := strconv.ParseBool(c.QueryParam("publish"))
	if err != nil {
		return bbberror.MissingParam("Publish", "You must specify a publish value true or false.")
	}

	recordings, err := h.find(ids)
	if err != nil {
		return err
	}

	for _, recording := range recordings {
		recording.SetPublished(publish)
		if err = h.db.Save(recording); err != nil {
			return err
		}
	}

	return render(c, libbbb.PublishRecordingsResult{
		Response:  success("", ""),
		Published: publish,
	})
}

///// Delete
////
//

// Delete removes the given recordings. Unknown recordings are ignored.
func (h *recording) Delete(c echo.Context) error {
	ids := list(c.QueryParam("recordID"))
	if len(ids) == 0 {
		return bbberror.MissingRecordID()
	}

	recordings, err := h.db.FindRecordings(nil, ids, nil)
	if err != nil {
		return err
	}

	for _, recording := range recordings {
		if err = h.db.Delete(recording); err != nil {
			return err
		}
	}

	return render(c, libbbb.DeleteRecordingsResult{
		Response: success("", ""),
		Deleted:  true,
	})
}

///// Update
////
//

// Update changes the metadata of the given recordings.
// A metadata with an empty value is removed.
func (h *recording) Update(c echo.Context) error {
	ids := list(c.QueryParam("recordID"))
	if len(ids) == 0 {
		return bbberror.MissingRecordID()
	}

	meta, err := metadata(c)
	if err != nil {
		return err
	}

	recordings, err := h.find(ids)
	if err != nil {
		return err
	}

	for _, recording := range recordings {
		if recording.Metadata == nil {
			recording.Metadata = map[string]string{}
		}

		for k, v := range meta {
			if v == "" {
				delete(recording.Metadata, k)
				continue
			}
			recording.Metadata[k] = v
		}

		if err = h.db.Save(recording); err != nil {
			return err
		}
	}

	return render(c, libbbb.UpdateRecordingsResult{
		Response: success("", ""),
		Updated:  true,
	})
}

// find returns the recordings for the given ids, all of them must exist.
func (h *recording) find(ids []string) ([]*model.Recording, error) {
	recordings := make([]*model.Recording, 0, len(ids))
	for _, id := range ids {
		recording, err := h.db.FindRecording(id)
		if err != nil {
			if h.db.IsNotFound(err) {
				return nil, bbberror.RecordingNotFound()
			}
			return nil, err
		}
		recordings = append(recordings, recording)
	}
	return recordings, nil
}
