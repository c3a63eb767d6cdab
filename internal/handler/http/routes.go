package http

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
)

func (h *Handler) Init() *chi.Mux {
	router := chi.NewRouter()
	router.Use(middleware.Recoverer)
	router.Use(h.withTraceID)
	router.Use(h.withLogging)

	router.Route("/api/auth", func(r chi.Router) {
		r.Post("/signup", h.signup)
		r.Post("/signin", h.signin)
		r.Get("/google", h.googleRedirect)
		r.Post("/google", h.googleSignin)
		r.Get("/google/callback", h.googleCallback)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/me", h.me)
		})
	})

	router.Route("/api/user", func(r chi.Router) {
		r.Post("/signout", h.signout)
		r.Get("/{userId}", h.getUser)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Get("/getusers", h.getUsers)
			r.Put("/update/{userId}", h.updateUser)
			r.Put("/update-role/{userId}", h.updateRole)
			r.Delete("/delete/{userId}", h.deleteUser)
		})
	})

	router.Route("/api/post", func(r chi.Router) {
		r.Get("/getposts", h.getPosts)
		r.Get("/post/{slug}", h.getPostBySlug)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/create", h.createPost)
			r.Put("/update/{postId}", h.updatePost)
			r.Delete("/delete/{postId}", h.deletePost)
		})
	})

	router.Route("/api/comment", func(r chi.Router) {
		r.Get("/getPostComments/{postId}", h.getPostComments)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/create", h.createComment)
			r.Put("/likeComment/{commentId}", h.likeComment)
			r.Put("/editComment/{commentId}", h.editComment)
			r.Delete("/deleteComment/{commentId}", h.deleteComment)
			r.Get("/getcomments", h.getComments)
		})
	})

	router.Route("/api/unduhan", func(r chi.Router) {
		r.Get("/", h.getDownloads)
		r.Get("/download/{fileId}", h.downloadFile)

		r.Group(func(r chi.Router) {
			r.Use(h.auth)
			r.Post("/upload", h.uploadDownload)
			r.Delete("/{fileId}", h.deleteDownload)
		})
	})

	return router
}
