package bind_group_provider

// BufferWrite describes a single GPU buffer write targeting a binding on a
// BindGroupProvider at a given byte offset. The scene batches one BufferWrite
// per drawable's uniform buffer each frame and submits them together through
// Renderer.WriteBuffers.
type BufferWrite struct {
	// Provider owns the destination buffer.
	Provider BindGroupProvider
	// Binding selects the buffer within the provider's bind group.
	Binding int
	// Offset is the destination byte offset within the buffer.
	Offset uint64
	// Data is the raw bytes to write.
	Data []byte
}
