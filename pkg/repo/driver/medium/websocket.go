package medium

import (
	"encoding/json"
	"net/http"
	"sync"
	"time"

	uuidLib "github.com/google/uuid"
	"github.com/gorilla/websocket"

	"chatflow/pkg/entities"
	"chatflow/utilities"
)

// EventSocket fans change events out to every attached subscriber. It is the
// observer half of the state manager's mutation/notify contract; subscribers
// only receive, they never send state back.
type EventSocket struct {
	*sync.RWMutex
	ConnSet map[string]*ConnObject
}

type ConnObject struct {
	ID    string
	Conn  *websocket.Conn
	Close chan bool
}

const pingInterval = time.Second * 30

func NewEventSocket() *EventSocket {
	return &EventSocket{
		RWMutex: new(sync.RWMutex),
		ConnSet: make(map[string]*ConnObject),
	}
}

func Upgrade() websocket.Upgrader {
	return websocket.Upgrader{
		Subprotocols: []string{"websocket"},
		CheckOrigin: func(r *http.Request) bool {
			return true
		},
	}
}

func (s *EventSocket) Add(newConn *websocket.Conn) {
	s.Lock()
	defer s.Unlock()

	connObj := &ConnObject{
		Conn:  newConn,
		Close: make(chan bool),
		ID:    uuidLib.NewString(),
	}
	log := utilities.NewLoggerWithFields(
		"eventsocket.Add", map[string]interface{}{
			"id": connObj.ID,
		},
	)

	connObj.Conn.SetCloseHandler(
		func(code int, text string) error {
			close(connObj.Close)
			log.Infof("Received close message with code %d and text %s", code, text)
			return nil
		},
	)

	// health checking
	go func(s *EventSocket, connObj *ConnObject) {
		thisConn := connObj.Conn
		ticker := time.NewTicker(pingInterval)
		defer func() {
			log.Info("Closing the ws connection")
			ticker.Stop()
			err := thisConn.WriteMessage(
				websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			)
			if err != nil {
				log.WithError(err).Error("sending close msg failed")
			}
			s.Remove(connObj.ID)
		}()

		_ = thisConn.SetReadDeadline(time.Now().Add(pingInterval))
		thisConn.SetPongHandler(func(string) error {
			_ = thisConn.SetReadDeadline(time.Now().Add(pingInterval))
			return nil
		})

		for {
			if err := thisConn.WriteMessage(websocket.PingMessage, []byte{}); err != nil {
				log.WithError(err).Error("ping failed")
				return
			}

			select {
			case <-connObj.Close:
				log.Debug("Received ping close")
				return
			case <-ticker.C:
			}
		}
	}(s, connObj)

	s.ConnSet[connObj.ID] = connObj
	log.Debugf("Added new ws subscriber, total conns: %d", len(s.ConnSet))
}

func (s *EventSocket) Remove(connID string) {
	s.Lock()
	defer s.Unlock()

	connObj, ok := s.ConnSet[connID]
	if !ok || connObj == nil {
		// nothing to remove
		return
	}

	if err := connObj.Conn.Close(); err != nil {
		utilities.NewLogger("eventsocket.Remove").
			WithError(err).Errorf("error closing ws conn %s", connID)
	}
	delete(s.ConnSet, connID)
}

// Broadcast pushes a change event to every subscriber. Dead connections are
// skipped; the health loop reaps them.
func (s *EventSocket) Broadcast(event entities.ChangeEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		utilities.NewLogger("eventsocket.Broadcast").
			WithError(err).Errorf("failed to marshal change event %+v", event)
		return
	}

	s.RLock()
	defer s.RUnlock()

	for _, connObj := range s.ConnSet {
		if err = connObj.Conn.WriteMessage(websocket.TextMessage, data); err != nil {
			utilities.NewLogger("eventsocket.Broadcast").
				WithError(err).Errorf("ws push failed for %s", connObj.ID)
		}
	}
}
