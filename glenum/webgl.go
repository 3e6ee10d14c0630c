package glenum

import (
	"fmt"
	"sync"
)

// Frequently referenced WebGL 1.0 constants.
const (
	None = 0x0000

	Points        = 0x0000
	Lines         = 0x0001
	Triangles     = 0x0004
	TriangleStrip = 0x0005
	TriangleFan   = 0x0006

	DepthBufferBit   = 0x0100
	StencilBufferBit = 0x0400
	ColorBufferBit   = 0x4000

	Texture2D      = 0x0DE1
	TextureCubeMap = 0x8513
	Texture0       = 0x84C0

	Byte          = 0x1400
	UnsignedByte  = 0x1401
	Short         = 0x1402
	UnsignedShort = 0x1403
	Int           = 0x1404
	UnsignedInt   = 0x1405
	Float         = 0x1406

	DepthComponent = 0x1902
	Alpha          = 0x1906
	RGB            = 0x1907
	RGBA           = 0x1908
	Luminance      = 0x1909
	LuminanceAlpha = 0x190A

	ArrayBuffer        = 0x8892
	ElementArrayBuffer = 0x8893
	StaticDraw         = 0x88E4

	FragmentShader = 0x8B30
	VertexShader   = 0x8B31

	Framebuffer         = 0x8D40
	Renderbuffer        = 0x8D41
	FramebufferComplete = 0x8CD5
)

var webglSymbols = map[string]int{
	// ClearBufferMask
	"GL_DEPTH_BUFFER_BIT":   DepthBufferBit,
	"GL_STENCIL_BUFFER_BIT": StencilBufferBit,
	"GL_COLOR_BUFFER_BIT":   ColorBufferBit,

	// BeginMode
	"GL_POINTS":         Points,
	"GL_LINES":          Lines,
	"GL_LINE_LOOP":      0x0002,
	"GL_LINE_STRIP":     0x0003,
	"GL_TRIANGLES":      Triangles,
	"GL_TRIANGLE_STRIP": TriangleStrip,
	"GL_TRIANGLE_FAN":   TriangleFan,

	// BlendingFactorDest / BlendingFactorSrc
	"GL_ZERO":                     0x0000,
	"GL_ONE":                      0x0001,
	"GL_SRC_COLOR":                0x0300,
	"GL_ONE_MINUS_SRC_COLOR":      0x0301,
	"GL_SRC_ALPHA":                0x0302,
	"GL_ONE_MINUS_SRC_ALPHA":      0x0303,
	"GL_DST_ALPHA":                0x0304,
	"GL_ONE_MINUS_DST_ALPHA":      0x0305,
	"GL_DST_COLOR":                0x0306,
	"GL_ONE_MINUS_DST_COLOR":      0x0307,
	"GL_SRC_ALPHA_SATURATE":       0x0308,
	"GL_CONSTANT_COLOR":           0x8001,
	"GL_ONE_MINUS_CONSTANT_COLOR": 0x8002,
	"GL_CONSTANT_ALPHA":           0x8003,
	"GL_ONE_MINUS_CONSTANT_ALPHA": 0x8004,
	"GL_BLEND_COLOR":              0x8005,

	// BlendEquationSeparate / BlendSubtract
	"GL_FUNC_ADD":              0x8006,
	"GL_BLEND_EQUATION":        0x8009,
	"GL_BLEND_EQUATION_RGB":    0x8009,
	"GL_BLEND_EQUATION_ALPHA":  0x883D,
	"GL_FUNC_SUBTRACT":         0x800A,
	"GL_FUNC_REVERSE_SUBTRACT": 0x800B,
	"GL_BLEND_DST_RGB":         0x80C8,
	"GL_BLEND_SRC_RGB":         0x80C9,
	"GL_BLEND_DST_ALPHA":       0x80CA,
	"GL_BLEND_SRC_ALPHA":       0x80CB,

	// Buffer objects
	"GL_ARRAY_BUFFER":                 ArrayBuffer,
	"GL_ELEMENT_ARRAY_BUFFER":         ElementArrayBuffer,
	"GL_ARRAY_BUFFER_BINDING":         0x8894,
	"GL_ELEMENT_ARRAY_BUFFER_BINDING": 0x8895,
	"GL_STREAM_DRAW":                  0x88E0,
	"GL_STATIC_DRAW":                  StaticDraw,
	"GL_DYNAMIC_DRAW":                 0x88E8,
	"GL_BUFFER_SIZE":                  0x8764,
	"GL_BUFFER_USAGE":                 0x8765,
	"GL_CURRENT_VERTEX_ATTRIB":        0x8626,

	// CullFaceMode
	"GL_FRONT":          0x0404,
	"GL_BACK":           0x0405,
	"GL_FRONT_AND_BACK": 0x0408,

	// EnableCap
	"GL_CULL_FACE":                0x0B44,
	"GL_BLEND":                    0x0BE2,
	"GL_DITHER":                   0x0BD0,
	"GL_STENCIL_TEST":             0x0B90,
	"GL_DEPTH_TEST":               0x0B71,
	"GL_SCISSOR_TEST":             0x0C11,
	"GL_POLYGON_OFFSET_FILL":      0x8037,
	"GL_SAMPLE_ALPHA_TO_COVERAGE": 0x809E,
	"GL_SAMPLE_COVERAGE":          0x80A0,

	// ErrorCode
	"GL_NO_ERROR":                      0x0000,
	"GL_INVALID_ENUM":                  0x0500,
	"GL_INVALID_VALUE":                 0x0501,
	"GL_INVALID_OPERATION":             0x0502,
	"GL_OUT_OF_MEMORY":                 0x0505,
	"GL_INVALID_FRAMEBUFFER_OPERATION": 0x0506,

	// FrontFaceDirection
	"GL_CW":  0x0900,
	"GL_CCW": 0x0901,

	// GetPName
	"GL_LINE_WIDTH":                   0x0B21,
	"GL_ALIASED_POINT_SIZE_RANGE":     0x846D,
	"GL_ALIASED_LINE_WIDTH_RANGE":     0x846E,
	"GL_CULL_FACE_MODE":               0x0B45,
	"GL_FRONT_FACE":                   0x0B46,
	"GL_DEPTH_RANGE":                  0x0B70,
	"GL_DEPTH_WRITEMASK":              0x0B72,
	"GL_DEPTH_CLEAR_VALUE":            0x0B73,
	"GL_DEPTH_FUNC":                   0x0B74,
	"GL_STENCIL_CLEAR_VALUE":          0x0B91,
	"GL_STENCIL_FUNC":                 0x0B92,
	"GL_STENCIL_VALUE_MASK":           0x0B93,
	"GL_STENCIL_FAIL":                 0x0B94,
	"GL_STENCIL_PASS_DEPTH_FAIL":      0x0B95,
	"GL_STENCIL_PASS_DEPTH_PASS":      0x0B96,
	"GL_STENCIL_REF":                  0x0B97,
	"GL_STENCIL_WRITEMASK":            0x0B98,
	"GL_STENCIL_BACK_FUNC":            0x8800,
	"GL_STENCIL_BACK_FAIL":            0x8801,
	"GL_STENCIL_BACK_PASS_DEPTH_FAIL": 0x8802,
	"GL_STENCIL_BACK_PASS_DEPTH_PASS": 0x8803,
	"GL_STENCIL_BACK_REF":             0x8CA3,
	"GL_STENCIL_BACK_VALUE_MASK":      0x8CA4,
	"GL_STENCIL_BACK_WRITEMASK":       0x8CA5,
	"GL_VIEWPORT":                     0x0BA2,
	"GL_SCISSOR_BOX":                  0x0C10,
	"GL_COLOR_CLEAR_VALUE":            0x0C22,
	"GL_COLOR_WRITEMASK":              0x0C23,
	"GL_UNPACK_ALIGNMENT":             0x0CF5,
	"GL_PACK_ALIGNMENT":               0x0D05,
	"GL_MAX_TEXTURE_SIZE":             0x0D33,
	"GL_MAX_VIEWPORT_DIMS":            0x0D3A,
	"GL_SUBPIXEL_BITS":                0x0D50,
	"GL_RED_BITS":                     0x0D52,
	"GL_GREEN_BITS":                   0x0D53,
	"GL_BLUE_BITS":                    0x0D54,
	"GL_ALPHA_BITS":                   0x0D55,
	"GL_DEPTH_BITS":                   0x0D56,
	"GL_STENCIL_BITS":                 0x0D57,
	"GL_POLYGON_OFFSET_UNITS":         0x2A00,
	"GL_POLYGON_OFFSET_FACTOR":        0x8038,
	"GL_TEXTURE_BINDING_2D":           0x8069,
	"GL_SAMPLE_BUFFERS":               0x80A8,
	"GL_SAMPLES":                      0x80A9,
	"GL_SAMPLE_COVERAGE_VALUE":        0x80AA,
	"GL_SAMPLE_COVERAGE_INVERT":       0x80AB,
	"GL_COMPRESSED_TEXTURE_FORMATS":   0x86A3,

	// HintMode / HintTarget
	"GL_DONT_CARE":            0x1100,
	"GL_FASTEST":              0x1101,
	"GL_NICEST":               0x1102,
	"GL_GENERATE_MIPMAP_HINT": 0x8192,

	// DataType
	"GL_BYTE":           Byte,
	"GL_UNSIGNED_BYTE":  UnsignedByte,
	"GL_SHORT":          Short,
	"GL_UNSIGNED_SHORT": UnsignedShort,
	"GL_INT":            Int,
	"GL_UNSIGNED_INT":   UnsignedInt,
	"GL_FLOAT":          Float,

	// PixelFormat
	"GL_DEPTH_COMPONENT": DepthComponent,
	"GL_ALPHA":           Alpha,
	"GL_RGB":             RGB,
	"GL_RGBA":            RGBA,
	"GL_LUMINANCE":       Luminance,
	"GL_LUMINANCE_ALPHA": LuminanceAlpha,

	// PixelType
	"GL_UNSIGNED_SHORT_4_4_4_4": 0x8033,
	"GL_UNSIGNED_SHORT_5_5_5_1": 0x8034,
	"GL_UNSIGNED_SHORT_5_6_5":   0x8363,

	// Shaders
	"GL_FRAGMENT_SHADER":                  FragmentShader,
	"GL_VERTEX_SHADER":                    VertexShader,
	"GL_MAX_VERTEX_ATTRIBS":               0x8869,
	"GL_MAX_VERTEX_UNIFORM_VECTORS":       0x8DFB,
	"GL_MAX_VARYING_VECTORS":              0x8DFC,
	"GL_MAX_COMBINED_TEXTURE_IMAGE_UNITS": 0x8B4D,
	"GL_MAX_VERTEX_TEXTURE_IMAGE_UNITS":   0x8B4C,
	"GL_MAX_TEXTURE_IMAGE_UNITS":          0x8872,
	"GL_MAX_FRAGMENT_UNIFORM_VECTORS":     0x8DFD,
	"GL_SHADER_TYPE":                      0x8B4F,
	"GL_DELETE_STATUS":                    0x8B80,
	"GL_COMPILE_STATUS":                   0x8B81,
	"GL_LINK_STATUS":                      0x8B82,
	"GL_VALIDATE_STATUS":                  0x8B83,
	"GL_ATTACHED_SHADERS":                 0x8B85,
	"GL_ACTIVE_UNIFORMS":                  0x8B86,
	"GL_ACTIVE_ATTRIBUTES":                0x8B89,
	"GL_SHADING_LANGUAGE_VERSION":         0x8B8C,
	"GL_CURRENT_PROGRAM":                  0x8B8D,

	// StencilFunction / DepthFunction
	"GL_NEVER":    0x0200,
	"GL_LESS":     0x0201,
	"GL_EQUAL":    0x0202,
	"GL_LEQUAL":   0x0203,
	"GL_GREATER":  0x0204,
	"GL_NOTEQUAL": 0x0205,
	"GL_GEQUAL":   0x0206,
	"GL_ALWAYS":   0x0207,

	// StencilOp
	"GL_KEEP":      0x1E00,
	"GL_REPLACE":   0x1E01,
	"GL_INCR":      0x1E02,
	"GL_DECR":      0x1E03,
	"GL_INVERT":    0x150A,
	"GL_INCR_WRAP": 0x8507,
	"GL_DECR_WRAP": 0x8508,

	// StringName
	"GL_VENDOR":   0x1F00,
	"GL_RENDERER": 0x1F01,
	"GL_VERSION":  0x1F02,

	// TextureMagFilter / TextureMinFilter
	"GL_NEAREST":                0x2600,
	"GL_LINEAR":                 0x2601,
	"GL_NEAREST_MIPMAP_NEAREST": 0x2700,
	"GL_LINEAR_MIPMAP_NEAREST":  0x2701,
	"GL_NEAREST_MIPMAP_LINEAR":  0x2702,
	"GL_LINEAR_MIPMAP_LINEAR":   0x2703,

	// TextureParameterName / TextureTarget
	"GL_TEXTURE_MAG_FILTER":          0x2800,
	"GL_TEXTURE_MIN_FILTER":          0x2801,
	"GL_TEXTURE_WRAP_S":              0x2802,
	"GL_TEXTURE_WRAP_T":              0x2803,
	"GL_TEXTURE_2D":                  Texture2D,
	"GL_TEXTURE":                     0x1702,
	"GL_TEXTURE_CUBE_MAP":            TextureCubeMap,
	"GL_TEXTURE_BINDING_CUBE_MAP":    0x8514,
	"GL_TEXTURE_CUBE_MAP_POSITIVE_X": 0x8515,
	"GL_TEXTURE_CUBE_MAP_NEGATIVE_X": 0x8516,
	"GL_TEXTURE_CUBE_MAP_POSITIVE_Y": 0x8517,
	"GL_TEXTURE_CUBE_MAP_NEGATIVE_Y": 0x8518,
	"GL_TEXTURE_CUBE_MAP_POSITIVE_Z": 0x8519,
	"GL_TEXTURE_CUBE_MAP_NEGATIVE_Z": 0x851A,
	"GL_MAX_CUBE_MAP_TEXTURE_SIZE":   0x851C,
	"GL_ACTIVE_TEXTURE":              0x84E0,

	// TextureWrapMode
	"GL_REPEAT":          0x2901,
	"GL_CLAMP_TO_EDGE":   0x812F,
	"GL_MIRRORED_REPEAT": 0x8370,

	// Uniform types
	"GL_FLOAT_VEC2":   0x8B50,
	"GL_FLOAT_VEC3":   0x8B51,
	"GL_FLOAT_VEC4":   0x8B52,
	"GL_INT_VEC2":     0x8B53,
	"GL_INT_VEC3":     0x8B54,
	"GL_INT_VEC4":     0x8B55,
	"GL_BOOL":         0x8B56,
	"GL_BOOL_VEC2":    0x8B57,
	"GL_BOOL_VEC3":    0x8B58,
	"GL_BOOL_VEC4":    0x8B59,
	"GL_FLOAT_MAT2":   0x8B5A,
	"GL_FLOAT_MAT3":   0x8B5B,
	"GL_FLOAT_MAT4":   0x8B5C,
	"GL_SAMPLER_2D":   0x8B5E,
	"GL_SAMPLER_CUBE": 0x8B60,

	// Vertex arrays
	"GL_VERTEX_ATTRIB_ARRAY_ENABLED":        0x8622,
	"GL_VERTEX_ATTRIB_ARRAY_SIZE":           0x8623,
	"GL_VERTEX_ATTRIB_ARRAY_STRIDE":         0x8624,
	"GL_VERTEX_ATTRIB_ARRAY_TYPE":           0x8625,
	"GL_VERTEX_ATTRIB_ARRAY_NORMALIZED":     0x886A,
	"GL_VERTEX_ATTRIB_ARRAY_POINTER":        0x8645,
	"GL_VERTEX_ATTRIB_ARRAY_BUFFER_BINDING": 0x889F,

	// Read format
	"GL_IMPLEMENTATION_COLOR_READ_TYPE":   0x8B9A,
	"GL_IMPLEMENTATION_COLOR_READ_FORMAT": 0x8B9B,

	// Shader precision-specified types
	"GL_LOW_FLOAT":    0x8DF0,
	"GL_MEDIUM_FLOAT": 0x8DF1,
	"GL_HIGH_FLOAT":   0x8DF2,
	"GL_LOW_INT":      0x8DF3,
	"GL_MEDIUM_INT":   0x8DF4,
	"GL_HIGH_INT":     0x8DF5,

	// Framebuffer and renderbuffer objects
	"GL_FRAMEBUFFER":                                  Framebuffer,
	"GL_RENDERBUFFER":                                 Renderbuffer,
	"GL_RGBA4":                                        0x8056,
	"GL_RGB5_A1":                                      0x8057,
	"GL_RGB565":                                       0x8D62,
	"GL_DEPTH_COMPONENT16":                            0x81A5,
	"GL_STENCIL_INDEX8":                               0x8D48,
	"GL_DEPTH_STENCIL":                                0x84F9,
	"GL_RENDERBUFFER_WIDTH":                           0x8D42,
	"GL_RENDERBUFFER_HEIGHT":                          0x8D43,
	"GL_RENDERBUFFER_INTERNAL_FORMAT":                 0x8D44,
	"GL_RENDERBUFFER_RED_SIZE":                        0x8D50,
	"GL_RENDERBUFFER_GREEN_SIZE":                      0x8D51,
	"GL_RENDERBUFFER_BLUE_SIZE":                       0x8D52,
	"GL_RENDERBUFFER_ALPHA_SIZE":                      0x8D53,
	"GL_RENDERBUFFER_DEPTH_SIZE":                      0x8D54,
	"GL_RENDERBUFFER_STENCIL_SIZE":                    0x8D55,
	"GL_FRAMEBUFFER_ATTACHMENT_OBJECT_TYPE":           0x8CD0,
	"GL_FRAMEBUFFER_ATTACHMENT_OBJECT_NAME":           0x8CD1,
	"GL_FRAMEBUFFER_ATTACHMENT_TEXTURE_LEVEL":         0x8CD2,
	"GL_FRAMEBUFFER_ATTACHMENT_TEXTURE_CUBE_MAP_FACE": 0x8CD3,
	"GL_COLOR_ATTACHMENT0":                            0x8CE0,
	"GL_DEPTH_ATTACHMENT":                             0x8D00,
	"GL_STENCIL_ATTACHMENT":                           0x8D20,
	"GL_DEPTH_STENCIL_ATTACHMENT":                     0x821A,
	"GL_NONE":                                         None,
	"GL_FRAMEBUFFER_COMPLETE":                         FramebufferComplete,
	"GL_FRAMEBUFFER_INCOMPLETE_ATTACHMENT":            0x8CD6,
	"GL_FRAMEBUFFER_INCOMPLETE_MISSING_ATTACHMENT":    0x8CD7,
	"GL_FRAMEBUFFER_INCOMPLETE_DIMENSIONS":            0x8CD9,
	"GL_FRAMEBUFFER_UNSUPPORTED":                      0x8CDD,
	"GL_FRAMEBUFFER_BINDING":                          0x8CA6,
	"GL_RENDERBUFFER_BINDING":                         0x8CA7,
	"GL_MAX_RENDERBUFFER_SIZE":                        0x84E8,

	// WebGL-specific pixel storage and context parameters
	"GL_UNPACK_FLIP_Y_WEBGL":                0x9240,
	"GL_UNPACK_PREMULTIPLY_ALPHA_WEBGL":     0x9241,
	"GL_CONTEXT_LOST_WEBGL":                 0x9242,
	"GL_UNPACK_COLORSPACE_CONVERSION_WEBGL": 0x9243,
	"GL_BROWSER_DEFAULT_WEBGL":              0x9244,
}

// WebGL texture units run GL_TEXTURE0 through GL_TEXTURE31.
const textureUnits = 32

func init() {
	for i := 0; i < textureUnits; i++ {
		webglSymbols[fmt.Sprintf("GL_TEXTURE%d", i)] = Texture0 + i
	}
}

// WebGLSymbols returns the WebGL 1.0 constant set as name -> code pairs.
// Names carry the "GL_" prefix. The map is a fresh copy.
func WebGLSymbols() map[string]int {
	out := make(map[string]int, len(webglSymbols))
	for name, code := range webglSymbols {
		out[name] = code
	}
	return out
}

var webglTable = sync.OnceValue(func() *Table {
	return NewTable(webglSymbols)
})

// WebGL returns the shared table built from WebGLSymbols.
func WebGL() *Table {
	return webglTable()
}
