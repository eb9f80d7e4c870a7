package constants

// JetStream stream and subjects
const (
	StreamNotifications     = "NOTIFICATIONS"
	SubjectNotificationsAll = "notifications.>"
	SubjectDiscountEarned   = "notifications.discount"
	SubjectCabReady         = "notifications.cab_ready"

	ConsumerDiscountNotifier = "discount_notifier"
	ConsumerCabReadyNotifier = "cab_ready_notifier"
)

// NSQ topics, used when the notifier runs on NSQ instead of JetStream
const (
	TopicDiscount = "discount"
	TopicCabReady = "cab-ready"
	ChannelInbox  = "inbox"
)
