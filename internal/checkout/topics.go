package checkout

const TopicCheckoutCompleted = "order.checkout.completed"

// Partition key = order_uid, supaya event per order maintain urutan.
func PartitionKey(orderUID string) []byte { return []byte(orderUID) }
