package routes

import (
	"github.com/go-chi/chi/v5"

	"github.com/Gleb-Gaiduk/wreddit-server/internal/api/handlers/post"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/api/handlers/vote"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/api/middleware"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/core/posts"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/core/votes"
	"github.com/Gleb-Gaiduk/wreddit-server/internal/metrics"
)

// RegisterPostRoutes registers feed, post CRUD, and voting endpoints.
// Reads work anonymously; writes require a session.
func RegisterPostRoutes(r chi.Router, postService posts.Service, voteService votes.Service,
	auth *middleware.SessionAuth, collector *metrics.Collector) {

	listHandler := post.NewListPostsHandler(postService)
	getHandler := post.NewGetPostHandler(postService)
	createHandler := post.NewCreatePostHandler(postService)
	updateHandler := post.NewUpdatePostHandler(postService)
	deleteHandler := post.NewDeletePostHandler(postService)
	castVoteHandler := vote.NewCastVoteHandler(voteService, collector)

	r.Get("/api/posts", listHandler.HandleListPosts)
	r.Get("/api/posts/{id}", getHandler.HandleGetPost)

	r.With(auth.RequireUser).Post("/api/posts", createHandler.HandleCreatePost)
	r.With(auth.RequireUser).Patch("/api/posts/{id}", updateHandler.HandleUpdatePost)
	r.With(auth.RequireUser).Delete("/api/posts/{id}", deleteHandler.HandleDeletePost)
	r.With(auth.RequireUser).Post("/api/posts/{id}/vote", castVoteHandler.HandleCastVote)
}
