package misc

import (
	"net/http"

	"github.com/2beens/fitlog/pkg"

	"github.com/gorilla/mux"
)

const healthOK = `{"status":"ok"}`

type pageRenderer interface {
	Render(w http.ResponseWriter, r *http.Request, page string, data any)
}

type Handler struct {
	renderer    pageRenderer
	versionInfo string
}

func NewHandler(renderer pageRenderer, versionInfo string) *Handler {
	return &Handler{
		renderer:    renderer,
		versionInfo: versionInfo,
	}
}

func (handler *Handler) SetupRoutes(mainRouter *mux.Router) {
	mainRouter.HandleFunc("/", handler.handleRoot).Methods("GET").Name("root")
	mainRouter.HandleFunc("/health", handler.handleHealth).Methods("GET").Name("health")
	mainRouter.HandleFunc("/version", handler.handleGetVersionInfo).Methods("GET").Name("version")
}

func (handler *Handler) handleRoot(w http.ResponseWriter, r *http.Request) {
	handler.renderer.Render(w, r, "home", nil)
}

// handleHealth is the liveness probe; it touches no dependency.
func (handler *Handler) handleHealth(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteJSONResponseOK(w, healthOK)
}

func (handler *Handler) handleGetVersionInfo(w http.ResponseWriter, _ *http.Request) {
	pkg.WriteTextResponseOK(w, handler.versionInfo)
}
