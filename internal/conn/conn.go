package conn

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/tobsdb/rowset/pkg"
)

var Upgrader = websocket.Upgrader{
	WriteBufferSize: 1024 * 10,
	ReadBufferSize:  1024 * 10,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// Server answers websocket query requests against a single database.
type Server struct {
	db Queryer
}

func NewServer(db Queryer) *Server {
	return &Server{db: db}
}

func (s *Server) Listen(port int) error {
	mux := http.NewServeMux()
	mux.HandleFunc("/", s.handleWs)
	pkg.InfoLog("listening on port", port)
	return http.ListenAndServe(fmt.Sprintf(":%d", port), mux)
}

func (s *Server) handleWs(w http.ResponseWriter, r *http.Request) {
	ws, err := Upgrader.Upgrade(w, r, nil)
	if err != nil {
		pkg.ErrorLog("upgrade error", err)
		return
	}

	conn_id := uuid.New()
	pkg.InfoLog("connection opened", conn_id)
	defer pkg.InfoLog("connection closed", conn_id)
	defer ws.Close()

	for {
		_, raw, err := ws.ReadMessage()
		if err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				pkg.ErrorLog("conn read error", conn_id, err)
			}
			return
		}

		res := HandleRequest(s.db, raw)
		if err := ws.WriteJSON(res); err != nil {
			pkg.ErrorLog("conn write error", conn_id, err)
			return
		}
	}
}
