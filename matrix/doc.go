// Package matrix provides the numeric substrate for graph batching.
//
// The matrix package provides:
//
//   - Dense: a row-major float64 matrix with O(1) element access, used for
//     node-attribute blocks and small adjacency matrices.
//   - COO: an immutable sparse coordinate matrix with a pre-sized builder,
//     used for block-diagonal union adjacency where O(T²) memory would
//     defeat the point of disjoint-union batching.
//   - Tensor: a rank-3 view (rows × cols × channels) for edge attributes,
//     either flat-dense (DenseTensor) or one matrix per channel
//     (ChannelTensor, the natural shape of a per-channel block-diagonal).
//   - Validators: centralized shape/nil/finite checks returning sentinel
//     errors, so callers branch with errors.Is and never parse messages.
//
// Dense is best for small or genuinely dense blocks where O(n²) memory is
// acceptable; COO is best for unions of many graphs, where memory follows
// the non-zero count instead of the squared node total.
//
// See the examples in this package and batch for usage patterns.
package matrix
