package tripplanner

import (
	"net/http"

	"github.com/theoremus-urban-solutions/trip-planner/internal"
)

type healthResponse struct {
	Status            string `json:"status"`
	Stops             int    `json:"stops"`
	ResponseTimestamp string `json:"responseTimestamp"`
}

func handleHealth(w http.ResponseWriter, r *http.Request) {
	g, _ := snap.Current()
	resp := healthResponse{
		Status:            "ok",
		Stops:             g.Len(),
		ResponseTimestamp: internal.Iso8601Now(),
	}
	if g.Len() == 0 {
		resp.Status = "degraded"
	}
	writeJSON(w, http.StatusOK, resp)
}
