package server_test

import (
	"testing"

	"github.com/appleboy/gofight"
	"github.com/mdouchement/bigbluebutton/pkg/libbbb"
	"github.com/stretchr/testify/assert"
)

func TestRequestHooks(t *testing.T) {
	engine, ctrl, r, cleanup := setup()
	defer cleanup()

	create := func(callbackURL, meetingID string) libbbb.HooksCreateResult {
		var result libbbb.HooksCreateResult

		params, err := libbbb.NewHooksCreateParameters(callbackURL)
		assert.NoError(t, err)
		params.MeetingID = meetingID
		params.GetRaw = libbbb.Bool(true)

		r.GET(signed(libbbb.MethodHooksCreate, encode(params, nil))).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
			err := libbbb.Decode(libbbb.MethodHooksCreate, r.Body.Bytes(), &result)
			assert.NoError(t, err)
			assert.True(t, result.Success())
		})
		return result
	}

	list := func(meetingID string) []libbbb.Hook {
		var result libbbb.HooksListResult

		params := &libbbb.HooksListParameters{MeetingID: meetingID}
		r.GET(signed(libbbb.MethodHooksList, encode(params, nil))).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
			err := libbbb.Decode(libbbb.MethodHooksList, r.Body.Bytes(), &result)
			assert.NoError(t, err)
			assert.True(t, result.Success())
		})
		return result.Hooks
	}

	global := create("https://example.com/callback", "")
	assert.NotEmpty(t, global.HookID)
	assert.Empty(t, global.MessageKey)
	assert.True(t, global.RawData)

	duplicate := create("https://example.com/callback", "")
	assert.Equal(t, "duplicateWarning", duplicate.MessageKey)
	assert.Equal(t, global.HookID, duplicate.HookID)

	scoped := create("https://example.com/callback", "m42")
	assert.NotEqual(t, global.HookID, scoped.HookID)
	create("https://example.com/other", "m1")

	assert.Len(t, list(""), 3)
	hooks := list("m42")
	assert.Len(t, hooks, 2)
	assert.Equal(t, "https://example.com/callback", hooks[0].CallbackURL)

	// Destroy
	destroy := encode(libbbb.NewHooksDestroyParameters(scoped.HookID))
	r.GET(signed(libbbb.MethodHooksDestroy, destroy)).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		var result libbbb.HooksDestroyResult
		err := libbbb.Decode(libbbb.MethodHooksDestroy, r.Body.Bytes(), &result)
		assert.NoError(t, err)
		assert.True(t, result.Success())
		assert.True(t, result.Removed)
	})

	_, err := ctrl.Database.FindHook(scoped.HookID)
	assert.True(t, ctrl.Database.IsNotFound(err))

	r.GET(signed(libbbb.MethodHooksDestroy, destroy)).Run(engine, func(r gofight.HTTPResponse, rq gofight.HTTPRequest) {
		assertFailed(t, r, "destroyMissingHook")
	})
}
