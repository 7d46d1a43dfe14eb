package models

// ChangeOp names the mutation that produced a ChangeEvent.
type ChangeOp string

const (
	OpInsert ChangeOp = "insert"
	OpUpdate ChangeOp = "update"
	OpDelete ChangeOp = "delete"
)

// ChangeEvent is published to subscribers after every successful vault
// mutation so that list views can refresh. Delivery is at-least-once per
// live subscriber; ordering between events is not guaranteed.
type ChangeEvent struct {
	Op       ChangeOp `json:"op"`
	RecordID int64    `json:"record_id"`
}
