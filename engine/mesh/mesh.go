package mesh

import (
	"encoding/binary"
	"sync"

	"github.com/moonlit-edelweiss/orbitlight/common"
	"github.com/moonlit-edelweiss/orbitlight/engine/renderer/bind_group_provider"
)

// meshImpl is the implementation of the Mesh interface.
type meshImpl struct {
	mu *sync.Mutex

	name     string
	vertices []Vertex
	indices  []uint32

	provider bind_group_provider.BindGroupProvider
}

// Mesh defines the interface for a static triangle or line mesh.
//
// A mesh owns its CPU-side vertex and index data plus a bind group provider
// that the renderer backend populates with GPU buffers during initialization.
// Vertex and index data are immutable after construction.
type Mesh interface {
	// Name returns the mesh identifier.
	//
	// Returns:
	//   - string: the mesh name
	Name() string

	// Vertices returns the CPU-side vertex data.
	// The returned slice is shared - do not modify.
	//
	// Returns:
	//   - []Vertex: the vertex data
	Vertices() []Vertex

	// Indices returns the CPU-side index data.
	// The returned slice is shared - do not modify.
	//
	// Returns:
	//   - []uint32: the index data
	Indices() []uint32

	// VertexData returns the vertex data as raw bytes for GPU upload.
	//
	// Returns:
	//   - []byte: byte view of the vertex data
	VertexData() []byte

	// IndexData returns the index data as little-endian bytes for GPU upload.
	//
	// Returns:
	//   - []byte: serialized index data
	IndexData() []byte

	// IndexCount returns the number of indices to draw.
	//
	// Returns:
	//   - uint32: the index count
	IndexCount() uint32

	// Provider returns the bind group provider holding this mesh's GPU buffers.
	//
	// Returns:
	//   - bind_group_provider.BindGroupProvider: the mesh buffer provider
	Provider() bind_group_provider.BindGroupProvider
}

var _ Mesh = &meshImpl{}

// NewMesh creates a mesh from pre-built vertex and index data.
// A bind group provider named after the mesh is created to hold the GPU
// buffers once the renderer initializes them.
//
// Parameters:
//   - name: the mesh identifier
//   - vertices: vertex data
//   - indices: index data (triangle list or line list depending on pipeline)
//
// Returns:
//   - Mesh: the newly created mesh
func NewMesh(name string, vertices []Vertex, indices []uint32) Mesh {
	return &meshImpl{
		mu:       &sync.Mutex{},
		name:     name,
		vertices: vertices,
		indices:  indices,
		provider: bind_group_provider.NewBindGroupProvider(name + "_mesh"),
	}
}

func (m *meshImpl) Name() string {
	return m.name
}

func (m *meshImpl) Vertices() []Vertex {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.vertices
}

func (m *meshImpl) Indices() []uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.indices
}

func (m *meshImpl) VertexData() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	return common.SliceToBytes(m.vertices)
}

func (m *meshImpl) IndexData() []byte {
	m.mu.Lock()
	defer m.mu.Unlock()
	buf := make([]byte, len(m.indices)*4)
	for i, idx := range m.indices {
		binary.LittleEndian.PutUint32(buf[i*4:], idx)
	}
	return buf
}

func (m *meshImpl) IndexCount() uint32 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return uint32(len(m.indices))
}

func (m *meshImpl) Provider() bind_group_provider.BindGroupProvider {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.provider
}
