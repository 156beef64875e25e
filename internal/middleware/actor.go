package middleware

import (
	"net/http"

	"github.com/wb-go/wbf/ginext"
)

// ActorHeader carries the id of the user performing the request. It is set
// by the authenticating proxy in front of the service.
const ActorHeader = "X-User-ID"

const actorKey = "actor_id"

func Actor() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if id := c.GetHeader(ActorHeader); id != "" {
			c.Set(actorKey, id)
		}
		c.Next()
	}
}

// RequireActor rejects requests that carry no actor.
func RequireActor() ginext.HandlerFunc {
	return func(c *ginext.Context) {
		if ActorID(c) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, ginext.H{"error": "missing " + ActorHeader + " header"})
			return
		}
		c.Next()
	}
}

func ActorID(c *ginext.Context) string {
	return c.GetString(actorKey)
}
