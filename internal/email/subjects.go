package email

const (
	subjectOrderConfirmationFmt = "Order Confirmed - %s"
	subjectOwnerOrderAlertFmt   = "New Order from %s - %s"
)
