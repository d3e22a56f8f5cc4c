package services

import "sync"

// CartNotifier broadcasts cart-changed signals to any number of display
// surfaces without coupling them to each other. Notifications carry no
// payload; observers are expected to re-read the cart store so they can
// never drift from storage truth.
type CartNotifier struct {
	mu        sync.Mutex
	observers map[string]func()
}

// NewCartNotifier creates a new cart notifier
func NewCartNotifier() *CartNotifier {
	return &CartNotifier{
		observers: make(map[string]func()),
	}
}

// Subscribe registers an observer under the given id. Subscribing the same id
// again replaces the previous callback, so repeated registration from one
// observer instance never produces duplicate deliveries.
func (n *CartNotifier) Subscribe(id string, fn func()) {
	if fn == nil {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	n.observers[id] = fn
}

// Unsubscribe removes the observer with the given id. Observers must call
// this on teardown so a destroyed view is never notified. Unknown ids are
// a no-op.
func (n *CartNotifier) Unsubscribe(id string) {
	n.mu.Lock()
	defer n.mu.Unlock()
	delete(n.observers, id)
}

// Notify delivers one cart-changed signal to every current subscriber.
// Zero subscribers is a no-op, never an error.
func (n *CartNotifier) Notify() {
	n.mu.Lock()
	callbacks := make([]func(), 0, len(n.observers))
	for _, fn := range n.observers {
		callbacks = append(callbacks, fn)
	}
	n.mu.Unlock()

	// Callbacks run outside the lock so an observer may re-subscribe or
	// unsubscribe during delivery.
	for _, fn := range callbacks {
		fn()
	}
}

// SubscriberCount returns the number of currently registered observers
func (n *CartNotifier) SubscriberCount() int {
	n.mu.Lock()
	defer n.mu.Unlock()
	return len(n.observers)
}
