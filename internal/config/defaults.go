package config

import "time"

const defaultPort = 8080

var defaultDB = DB{
	Host: "127.0.0.1",
	Port: "5432",
	User: "myuser",
	Pass: "mypassword",
	Name: "flora",
}

var defaultBusiness = Business{
	Timezone:         "Asia/Kolkata",
	OpenHour:         9,
	CloseHour:        21,
	DeliveryDuration: 5 * time.Hour,
}

var defaultKafka = Kafka{
	PaymentsTopic:      "payments",
	GroupID:            "partner-assignment",
	NotificationsTopic: "partner-notifications",
}

var defaultNotifier = Notifier{
	Driver:         NotifierLog,
	QueueSize:      256,
	RabbitExchange: "partner_notifications",
}

const defaultOperationTimeout = 3 * time.Second

// DefaultPort returns the default port.
func DefaultPort() int {
	return defaultPort
}

// DefaultDB returns the default database settings.
func DefaultDB() DB {
	return defaultDB
}

// DefaultBusiness returns the default business hours settings.
func DefaultBusiness() Business {
	return defaultBusiness
}

// DefaultKafka returns the default Kafka settings.
func DefaultKafka() Kafka {
	return defaultKafka
}

// DefaultNotifier returns the default notifier settings.
func DefaultNotifier() Notifier {
	return defaultNotifier
}
