package pubsub

// Pack is a single message travelling through a topic. Key is used for
// partitioning, Msg is an opaque payload, usually JSON.
type Pack struct {
	Key []byte
	Msg []byte
}
