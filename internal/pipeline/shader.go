package pipeline

// VertexShader writes the clip-space position and all F attributes of
// out from in and the uniform block. It must write every attribute.
type VertexShader func(in *VertexInput, out *GeometryVertex, uniform Uniform)

// FragmentShader writes all four channels of out from the interpolated
// attributes in and the uniform block.
type FragmentShader func(in *FragmentInput, out *FragmentOutput, uniform Uniform)
