package gateway

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/projectunified/unidialog-go/internal/action"
	"github.com/projectunified/unidialog-go/internal/middleware"
	"github.com/projectunified/unidialog-go/internal/model"
	"github.com/projectunified/unidialog-go/internal/packet"
	"github.com/projectunified/unidialog-go/internal/session"
)

// Dialogs is the slice of the dialog manager the internal API drives.
type Dialogs interface {
	DefaultNamespace() string
	Actions() []action.NamespacedID
	ClearDialog(id uuid.UUID) bool
}

// InternalHandler returns an http.Handler for the gateway's internal API.
func (gw *Gateway) InternalHandler(dialogs Dialogs) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RealIP)
	r.Use(chimw.RequestID)
	r.Use(middleware.Logging(gw.logger))
	r.Use(chimw.Recoverer)
	if len(gw.cfg.CORSAllowedOrigins) > 0 {
		r.Use(cors.Handler(cors.Options{
			AllowedOrigins:   gw.cfg.CORSAllowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Content-Type", "Authorization"},
			AllowCredentials: false,
			MaxAge:           300,
		}))
	}

	r.Get("/healthz", gw.handleHealth)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/internal", func(r chi.Router) {
		r.Use(middleware.BearerToken(gw.cfg.APIToken))

		r.Get("/actions", func(w http.ResponseWriter, r *http.Request) {
			ids := dialogs.Actions()
			resp := model.ActionsResponse{
				DefaultNamespace: dialogs.DefaultNamespace(),
				Actions:          make([]string, 0, len(ids)),
			}
			for _, id := range ids {
				resp.Actions = append(resp.Actions, id.String())
			}
			writeJSON(w, http.StatusOK, resp)
		})

		r.Route("/peers", func(r chi.Router) {
			r.Post("/", gw.handleCreatePeer)
			r.Route("/{peerId}", func(r chi.Router) {
				r.Get("/", gw.withSession(gw.handleGetPeer))
				r.Delete("/", gw.handleDeletePeer)
				r.Put("/phase", gw.withSession(gw.handleSetPhase))
				r.Post("/click", gw.withSession(func(w http.ResponseWriter, r *http.Request, sess *session.Session) {
					gw.handleClick(w, r, sess, dialogs.DefaultNamespace())
				}))
				r.Post("/dialog/clear", func(w http.ResponseWriter, r *http.Request) {
					id, ok := peerID(w, r)
					if !ok {
						return
					}
					if !dialogs.ClearDialog(id) {
						writeError(w, http.StatusNotFound, "peer not found")
						return
					}
					w.WriteHeader(http.StatusNoContent)
				})
				r.Get("/outbox", gw.withSession(gw.handleDrainOutbox))
			})
		})
	})
	return r
}

func (gw *Gateway) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status": "ok",
		"peers":  gw.SessionCount(),
	})
}

func (gw *Gateway) handleCreatePeer(w http.ResponseWriter, r *http.Request) {
	var req model.CreatePeerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	phase := packet.PhasePlay
	if req.Phase != "" {
		p, ok := packet.ParsePhase(req.Phase)
		if !ok {
			writeError(w, http.StatusBadRequest, "unknown phase: "+req.Phase)
			return
		}
		phase = p
	}

	sess, err := gw.CreateSession(req.Name, phase)
	if err != nil {
		if errors.Is(err, ErrPeerLimit) {
			writeError(w, http.StatusServiceUnavailable, err.Error())
			return
		}
		gw.logger.Error("create session failed", zap.Error(err))
		writeError(w, http.StatusInternalServerError, "create session failed")
		return
	}
	writeJSON(w, http.StatusCreated, peerResponse(sess))
}

func (gw *Gateway) handleGetPeer(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	writeJSON(w, http.StatusOK, peerResponse(sess))
}

func (gw *Gateway) handleDeletePeer(w http.ResponseWriter, r *http.Request) {
	id, ok := peerID(w, r)
	if !ok {
		return
	}
	gw.DeleteSession(id)
	w.WriteHeader(http.StatusNoContent)
}

func (gw *Gateway) handleSetPhase(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	var req model.SetPhaseRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	phase, ok := packet.ParsePhase(req.Phase)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown phase: "+req.Phase)
		return
	}
	sess.SetPhase(phase)
	writeJSON(w, http.StatusOK, peerResponse(sess))
}

func (gw *Gateway) handleClick(w http.ResponseWriter, r *http.Request, sess *session.Session, defaultNamespace string) {
	var req model.ClickRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ID == "" {
		writeError(w, http.StatusBadRequest, "invalid request: id required")
		return
	}
	data, err := compoundFromJSON(req.Payload)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	p := &packet.CustomClickAction{
		Phase:   sess.Phase(),
		ID:      action.ParseID(req.ID, defaultNamespace),
		Payload: data,
	}
	if err := gw.Receive(sess.ID, p); err != nil {
		writeError(w, http.StatusNotFound, "peer not found")
		return
	}
	w.WriteHeader(http.StatusAccepted)
}

func (gw *Gateway) handleDrainOutbox(w http.ResponseWriter, r *http.Request, sess *session.Session) {
	pkts := sess.Outbox.Drain()
	out := make([]model.OutboxPacket, 0, len(pkts))
	for _, p := range pkts {
		out = append(out, model.OutboxPacket{Type: p.PacketType().String()})
	}
	writeJSON(w, http.StatusOK, out)
}

// withSession resolves {peerId} to a live session before calling h.
func (gw *Gateway) withSession(h func(http.ResponseWriter, *http.Request, *session.Session)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := peerID(w, r)
		if !ok {
			return
		}
		sess, ok := gw.Session(id)
		if !ok {
			writeError(w, http.StatusNotFound, "peer not found")
			return
		}
		h(w, r, sess)
	}
}

func peerID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "peerId"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid peer id")
		return uuid.Nil, false
	}
	return id, true
}

func peerResponse(sess *session.Session) model.PeerResponse {
	return model.PeerResponse{
		ID:        sess.ID.String(),
		Name:      sess.Name,
		Phase:     sess.Phase().String(),
		Queued:    sess.Outbox.Len(),
		CreatedAt: sess.CreatedAt.UTC().Format(time.RFC3339),
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, model.ErrorResponse{Error: msg})
}
