package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"mime/multipart"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/jsphweid/mid2text/instrument"
	"github.com/jsphweid/mid2text/library"
	"github.com/jsphweid/mid2text/macro"
	"github.com/jsphweid/mid2text/midi"
	"github.com/jsphweid/mid2text/model"
	"github.com/jsphweid/mid2text/song"
	"github.com/rs/cors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

// maxUploadSize caps the whole /create request body.
var maxUploadSize int64 = 32 << 20

// uploads beyond this spill from memory to temporary files
const maxUploadMemory = 8 << 20

var serveAddr string

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "address to listen on")
	rootCmd.AddCommand(serveCmd)
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serves create, merge and the library over http",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := library.Open(cfg.Library)
		if err != nil {
			return err
		}
		defer store.Close()

		addr := stringFlag(cmd, "addr", serveAddr, cfg.Addr)
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()
		return serve(ctx, addr, NewHandler(store, cfg.CORSOrigins))
	},
}

func serve(ctx context.Context, addr string, handler http.Handler) error {
	srv := &http.Server{Addr: addr, Handler: handler}
	errCh := make(chan error, 1)
	go func() {
		logrus.Infof("listening on %s", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}

// Server holds the http handlers. A nil store disables the /songs routes.
type Server struct {
	store library.Store
}

// NewHandler wires the routes, request logging and CORS.
func NewHandler(store library.Store, origins []string) http.Handler {
	s := &Server{store: store}
	router := mux.NewRouter().StrictSlash(true)
	router.Use(requestLogger)
	router.HandleFunc("/create", s.HandleCreate).Methods("POST")
	router.HandleFunc("/merge", HandleMerge).Methods("POST")
	router.HandleFunc("/inspect", HandleInspect).Methods("POST")
	router.HandleFunc("/decode", HandleInspect).Methods("POST")
	if store != nil {
		router.HandleFunc("/songs", s.HandleListSongs).Methods("GET")
		router.HandleFunc("/songs/{name}", s.HandleGetSong).Methods("GET")
		router.HandleFunc("/songs/{name}", s.HandlePutSong).Methods("PUT")
		router.HandleFunc("/songs/{name}", s.HandleDeleteSong).Methods("DELETE")
	}
	return cors.New(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE"},
	}).Handler(router)
}

func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)
		start := time.Now()
		next.ServeHTTP(w, r)
		logrus.WithFields(logrus.Fields{
			"id":      id,
			"method":  r.Method,
			"path":    r.URL.Path,
			"elapsed": time.Since(start),
		}).Info("request")
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logrus.Errorf("could not write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, model.ErrorResponse{Error: err.Error()})
}

func decodeBody(r *http.Request, v any) error {
	body, err := io.ReadAll(r.Body)
	if err != nil {
		return err
	}
	return json.Unmarshal(body, v)
}

// HandleCreate takes a multipart form with one file field per instrument
// name. Several files under one name are merged into that instrument.
func (s *Server) HandleCreate(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadSize)
	if err := r.ParseMultipartForm(maxUploadMemory); err != nil {
		var tooLarge *http.MaxBytesError
		if errors.As(err, &tooLarge) {
			writeError(w, http.StatusRequestEntityTooLarge, err)
			return
		}
		writeError(w, http.StatusBadRequest, err)
		return
	}
	fold := r.FormValue("relative") == "true"

	sng := song.New()
	for _, kind := range instrument.AllKinds {
		for _, fh := range r.MultipartForm.File[kind.String()] {
			track, err := extractUpload(fh)
			if err != nil {
				writeError(w, http.StatusBadRequest, err)
				return
			}
			sng.AddOrMerge(instrument.New(kind, track))
		}
	}

	res, err := renderSong(sng, nil, fold)
	var invalid *instrument.InvalidKeyError
	if errors.As(err, &invalid) {
		writeError(w, http.StatusUnprocessableEntity, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, res)
}

func extractUpload(fh *multipart.FileHeader) (model.Track, error) {
	f, err := fh.Open()
	if err != nil {
		return model.Track{}, err
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		return model.Track{}, err
	}
	return midi.ExtractBytes(data)
}

func HandleMerge(w http.ResponseWriter, r *http.Request) {
	var input model.MergeRequestBody
	if err := decodeBody(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, model.MacroResponse{Macro: macro.Merge(input.Streams)})
}

func HandleInspect(w http.ResponseWriter, r *http.Request) {
	var input model.DecodeRequestBody
	if err := decodeBody(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, decodeResponse(input.Stream))
}

func (s *Server) HandleListSongs(w http.ResponseWriter, r *http.Request) {
	entries, err := s.store.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	if entries == nil {
		entries = []library.Entry{}
	}
	writeJSON(w, http.StatusOK, entries)
}

func (s *Server) HandleGetSong(w http.ResponseWriter, r *http.Request) {
	e, err := s.store.Get(r.Context(), mux.Vars(r)["name"])
	if errors.Is(err, library.ErrNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) HandlePutSong(w http.ResponseWriter, r *http.Request) {
	var input model.SongRequestBody
	if err := decodeBody(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	e := library.NewEntry(mux.Vars(r)["name"], input.Macro, input.Instruments...)
	if err := s.store.Put(r.Context(), e); err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, e)
}

func (s *Server) HandleDeleteSong(w http.ResponseWriter, r *http.Request) {
	if err := s.store.Delete(r.Context(), mux.Vars(r)["name"]); err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
