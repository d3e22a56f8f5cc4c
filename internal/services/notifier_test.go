package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCartNotifier_NotifyReachesAllSubscribers(t *testing.T) {
	notifier := NewCartNotifier()

	var badge, page int
	notifier.Subscribe("header-badge", func() { badge++ })
	notifier.Subscribe("cart-page", func() { page++ })

	notifier.Notify()

	assert.Equal(t, 1, badge)
	assert.Equal(t, 1, page)
}

func TestCartNotifier_SubscribeIsIdempotentPerObserver(t *testing.T) {
	notifier := NewCartNotifier()

	var calls int
	notifier.Subscribe("header-badge", func() { calls++ })
	notifier.Subscribe("header-badge", func() { calls++ })

	notifier.Notify()

	assert.Equal(t, 1, calls, "re-subscribing the same observer must not duplicate delivery")
	assert.Equal(t, 1, notifier.SubscriberCount())
}

func TestCartNotifier_UnsubscribeStopsDelivery(t *testing.T) {
	notifier := NewCartNotifier()

	var calls int
	notifier.Subscribe("cart-page", func() { calls++ })
	notifier.Unsubscribe("cart-page")

	notifier.Notify()

	assert.Equal(t, 0, calls)
	assert.Equal(t, 0, notifier.SubscriberCount())
}

func TestCartNotifier_UnsubscribeUnknownIsNoOp(t *testing.T) {
	notifier := NewCartNotifier()
	assert.NotPanics(t, func() { notifier.Unsubscribe("never-registered") })
}

func TestCartNotifier_NotifyWithoutSubscribers(t *testing.T) {
	notifier := NewCartNotifier()
	assert.NotPanics(t, func() { notifier.Notify() })
}

func TestCartNotifier_ObserverMayUnsubscribeDuringDelivery(t *testing.T) {
	notifier := NewCartNotifier()

	var calls int
	notifier.Subscribe("one-shot", func() {
		calls++
		notifier.Unsubscribe("one-shot")
	})

	notifier.Notify()
	notifier.Notify()

	assert.Equal(t, 1, calls)
}
