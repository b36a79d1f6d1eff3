// Package registry tracks live client connections so the server can
// close every one of them when the game ends.
package registry

import (
	"github.com/awesome-cap/hashmap"

	"github.com/uno-online/server/network"
)

type Registry struct {
	conns *hashmap.HashMap
}

func New() *Registry {
	return &Registry{conns: hashmap.New()}
}

func (r *Registry) Add(conn *network.Conn) {
	r.conns.Set(conn.Peer(), conn)
}

func (r *Registry) Remove(conn *network.Conn) {
	r.conns.Del(conn.Peer())
}

// Get returns the tracked connection for peer, if any.
func (r *Registry) Get(peer string) (*network.Conn, bool) {
	v, ok := r.conns.Get(peer)
	if !ok {
		return nil, false
	}
	return v.(*network.Conn), true
}

// CloseAll closes every tracked connection and empties the registry.
func (r *Registry) CloseAll() {
	conns := make([]*network.Conn, 0)
	r.conns.Foreach(func(e *hashmap.Entry) {
		conns = append(conns, e.Value().(*network.Conn))
	})
	for _, conn := range conns {
		_ = conn.Close()
		r.conns.Del(conn.Peer())
	}
}
