package events

// All lifecycle events share one topic so the audit consumer sees the whole
// pipeline in one stream.
const TopicLifecycle = "supplychain.lifecycle"

// Partition key = the local record id, keeping events for one record in order.
func PartitionKey(id string) []byte { return []byte(id) }
