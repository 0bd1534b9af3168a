package mq

import (
	"sync"

	"sole_and_ankle/catalog/internal/events"

	zmq "github.com/pebbe/zmq4"
)

// Publisher broadcasts catalog events on a ZMQ PUB socket.
type Publisher struct {
	mu     sync.Mutex
	socket *zmq.Socket
}

// NewPublisher binds a PUB socket on tcp://*:port.
func NewPublisher(port string) (*Publisher, error) {
	sock, err := zmq.NewSocket(zmq.PUB)
	if err != nil {
		return nil, err
	}
	if err := sock.Bind("tcp://*:" + port); err != nil {
		sock.Close()
		return nil, err
	}
	return &Publisher{socket: sock}, nil
}

// Publish sends a two-frame message: topic, then the flatbuffer payload.
// zmq sockets are not goroutine safe, so sends are serialized.
func (p *Publisher) Publish(e events.Event) error {
	payload := events.Encode(e)

	p.mu.Lock()
	defer p.mu.Unlock()
	_, err := p.socket.SendMessage(e.Topic(), payload)
	return err
}

func (p *Publisher) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.socket.Close()
}
