package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func NewRouter(apiHandler *APIHandler) http.Handler {
	r := chi.NewRouter()

	r.Use(RequestLogger)
	r.Use(middleware.Recoverer)    // Recover from panics
	r.Use(middleware.StripSlashes) // Ensure consistent path handling

	// All API routes will be under /api
	r.Route("/api", func(r chi.Router) {
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
			w.Write([]byte(`{"status":"ok"}`))
		})

		// Chatbot
		r.Post("/chat", apiHandler.ChatHandler)
		r.Delete("/chat/session", apiHandler.ClearSessionHandler)
		r.Get("/chat/stats", apiHandler.ChatStatsHandler)
		r.Get("/chat/context", apiHandler.ChatContextHandler)

		// Catálogo
		r.Route("/empresas", func(r chi.Router) {
			r.Get("/", apiHandler.ListEmpresasHandler)
			r.Post("/", apiHandler.CreateEmpresaHandler)
			r.Get("/{id}", apiHandler.GetEmpresaHandler)
			r.Put("/{id}", apiHandler.UpdateEmpresaHandler)
			r.Delete("/{id}", apiHandler.DeleteEmpresaHandler)
		})

		r.Route("/atractivos", func(r chi.Router) {
			r.Get("/", apiHandler.ListAtractivosHandler)
			r.Post("/", apiHandler.CreateAtractivoHandler)
			r.Get("/{id}", apiHandler.GetAtractivoHandler)
			r.Put("/{id}", apiHandler.UpdateAtractivoHandler)
			r.Delete("/{id}", apiHandler.DeleteAtractivoHandler)
		})

		r.Route("/categorias", func(r chi.Router) {
			r.Get("/", apiHandler.ListCategoriasHandler)
			r.Post("/", apiHandler.CreateCategoriaHandler)
			r.Get("/{id}", apiHandler.GetCategoriaHandler)
			r.Put("/{id}", apiHandler.UpdateCategoriaHandler)
			r.Delete("/{id}", apiHandler.DeleteCategoriaHandler)
		})

		r.Route("/rutas", func(r chi.Router) {
			r.Get("/", apiHandler.ListRutasHandler)
			r.Post("/", apiHandler.CreateRutaHandler)
			r.Get("/{id}", apiHandler.GetRutaHandler)
			r.Get("/{id}/atractivos", apiHandler.GetAtractivosDeRutaHandler)
			r.Put("/{id}", apiHandler.UpdateRutaHandler)
			r.Delete("/{id}", apiHandler.DeleteRutaHandler)
		})

		r.Route("/resenas", func(r chi.Router) {
			r.Get("/", apiHandler.ListResenasHandler)
			r.Post("/", apiHandler.CreateResenaHandler)
			r.Get("/{atractivoID}", apiHandler.ListResenasDeAtractivoHandler)
			r.Delete("/{id}", apiHandler.DeleteResenaHandler)
		})

		r.Route("/favoritos", func(r chi.Router) {
			r.Get("/", apiHandler.ListFavoritosHandler)
			r.Post("/{atractivoID}", apiHandler.CreateFavoritoHandler)
			r.Delete("/{atractivoID}", apiHandler.DeleteFavoritoHandler)
		})

		r.Route("/usuarios", func(r chi.Router) {
			r.Get("/locales", apiHandler.ListUsuariosHandler)
			r.Delete("/{id}", apiHandler.DeleteUsuarioHandler)
			r.Put("/{id}/rol", apiHandler.UpdateRolUsuarioHandler)
		})

		// Descubrimiento
		r.Get("/busqueda", apiHandler.BusquedaHandler)
		r.Get("/filtros", apiHandler.FiltrosHandler)
		r.Get("/ubicaciones", apiHandler.UbicacionesHandler)

		// Administración
		r.Get("/admin/estadisticas", apiHandler.EstadisticasHandler)
	})

	return r
}
