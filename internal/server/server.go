package server

import (
	"fmt"
	"io"
	"net/http"
	"sort"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/mdouchement/bigbluebutton/internal/bbberror"
	"github.com/mdouchement/bigbluebutton/internal/database"
	"github.com/mdouchement/bigbluebutton/internal/server/middlewares"
	"github.com/mdouchement/bigbluebutton/pkg/libbbb"
	"github.com/sirupsen/logrus"
)

// DefaultBasePath is the path of the API root on BigBlueButton servers.
const DefaultBasePath = "/bigbluebutton/api"

// An IOC is an Iversion Of Control pattern used to init the server package.
type IOC struct {
	Version  string
	Database database.Client
	Logger   *logrus.Logger
	// API params
	BasePath  string
	Secret    string
	Algorithm libbbb.HashAlgorithm
}

// EchoEngine instantiates the wep server.
func EchoEngine(ctrl IOC) *echo.Echo {
	if ctrl.BasePath == "" {
		ctrl.BasePath = DefaultBasePath
	}
	ctrl.BasePath = "/" + strings.Trim(ctrl.BasePath, "/")

	if ctrl.Algorithm == "" {
		ctrl.Algorithm = libbbb.DefaultHashAlgorithm
	}

	if ctrl.Logger == nil {
		silent := logrus.New()
		silent.SetOutput(io.Discard)
		ctrl.Logger = silent
	}

	engine := echo.New()
	engine.HideBanner = true
	engine.Use(middleware.Recover())
	engine.Use(middleware.Gzip())

	engine.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "[${status}] ${method} ${path} (${bytes_in}) ${latency_human}\n",
		Output: ctrl.Logger.Out,
	}))
	// Error handler
	engine.HTTPErrorHandler = middlewares.NewHTTPErrorHandler(ctrl.Logger)
	engine.Binder = middlewares.NewBinder()

	engine.Pre(middleware.RemoveTrailingSlash())

	////////////
	// Router //
	////////////

	checksum := middlewares.Checksum(libbbb.Signer{
		Secret:    ctrl.Secret,
		Algorithm: ctrl.Algorithm,
	}, ctrl.BasePath)

	router := engine.Group(ctrl.BasePath)

	// generic handlers
	//
	router.GET("", func(c echo.Context) error {
		return middlewares.RenderXML(c, http.StatusOK, libbbb.APIVersionResult{
			Response:   success("", ""),
			Version:    "2.0",
			APIVersion: "2.0",
			BBBVersion: ctrl.Version,
		})
	})

	//
	// meeting handlers
	//
	meeting := &meeting{
		db: ctrl.Database,
	}
	router.GET("/"+libbbb.MethodCreate, meeting.Create, checksum)
	router.POST("/"+libbbb.MethodCreate, meeting.Create, checksum)
	router.GET("/"+libbbb.MethodJoin, meeting.Join, checksum)
	router.GET("/"+libbbb.MethodEnd, meeting.End, checksum)
	router.GET("/"+libbbb.MethodIsMeetingRunning, meeting.IsMeetingRunning, checksum)
	router.GET("/"+libbbb.MethodGetMeetings, meeting.List, checksum)
	router.GET("/"+libbbb.MethodGetMeetingInfo, meeting.Info, checksum)

	//
	// recording handlers
	//
	recording := &recording{
		db: ctrl.Database,
	}
	router.GET("/"+libbbb.MethodGetRecordings, recording.List, checksum)
	router.GET("/"+libbbb.MethodPublishRecordings, recording.Publish, checksum)
	router.GET("/"+libbbb.MethodDeleteRecordings, recording.Delete, checksum)
	router.GET("/"+libbbb.MethodUpdateRecordings, recording.Update, checksum)

	//
	// client configuration handlers
	//
	config := &config{
		db: ctrl.Database,
	}
	router.GET("/"+libbbb.MethodGetDefaultConfigXML, config.Default, checksum)
	router.POST("/"+libbbb.MethodSetConfigXML, config.Set, checksum)

	//
	// hook handlers
	//
	hook := &hook{
		db: ctrl.Database,
	}
	router.GET("/"+libbbb.MethodHooksCreate, hook.Create, checksum)
	router.GET("/"+libbbb.MethodHooksList, hook.List, checksum)
	router.GET("/"+libbbb.MethodHooksDestroy, hook.Destroy, checksum)

	return engine
}

// PrintRoutes prints the Echo engin exposed routes.
func PrintRoutes(e *echo.Echo) {
	ignored := map[string]bool{
		"":   true,
		".":  true,
		"/*": true,
	}

	routes := e.Routes()
	sort.Slice(routes, func(i int, j int) bool {
		return routes[i].Path < routes[j].Path
	})

	fmt.Println("Routes:")
	for _, route := range routes {
		if ignored[route.Path] {
			continue
		}
		fmt.Printf("%6s %s\n", route.Method, route.Path)
	}
}

func success(key, message string) libbbb.Response {
	return libbbb.Response{
		ReturnCode: libbbb.ReturnCodeSuccess,
		MessageKey: key,
		Message:    message,
	}
}

func render(c echo.Context, v any) error {
	return middlewares.RenderXML(c, http.StatusOK, v)
}

// list splits a comma-separated parameter.
func list(s string) []string {
	var values []string
	for _, v := range strings.Split(s, ",") {
		if v = strings.TrimSpace(v); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// prefixed returns the values of the parameters having the given prefix, without the prefix.
func prefixed(c echo.Context, prefix string) map[string]string {
	values := map[string]string{}
	for k, v := range c.QueryParams() {
		if strings.HasPrefix(k, prefix) && len(v) > 0 {
			values[strings.TrimPrefix(k, prefix)] = v[0]
		}
	}
	return values
}

// metadata returns the `meta_' parameters, rejecting the names that can not be rendered as XML elements.
func metadata(c echo.Context) (map[string]string, error) {
	values := prefixed(c, "meta_")
	for name := range values {
		if !libbbb.ValidMetadataName(name) {
			return nil, bbberror.InvalidMetadataName(name)
		}
	}
	return values, nil
}

func baseURL(c echo.Context) string {
	return fmt.Sprintf("%s://%s", c.Scheme(), c.Request().Host)
}
