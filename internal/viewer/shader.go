package viewer

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/objmesh/internal/render/gpu"
)

var vertexShader = fmt.Sprintf(`#version 410 core
layout(location = %d) in vec3 aPosition;
layout(location = %d) in vec2 aTexCoord;
layout(location = %d) in vec3 aNormal;

uniform mat4 uMVP;
uniform mat4 uModel;

out vec2 vTexCoord;
out vec3 vNormal;

void main() {
    vTexCoord = aTexCoord;
    vNormal = mat3(uModel) * aNormal;
    gl_Position = uMVP * vec4(aPosition, 1.0);
}
`, gpu.AttribPosition, gpu.AttribTexCoord, gpu.AttribNormal)

const fragmentShader = `#version 410 core
in vec2 vTexCoord;
in vec3 vNormal;

uniform sampler2D uTexture;
uniform bool uUseTexture;
uniform vec3 uColor;
uniform vec3 uLightDir;

out vec4 FragColor;

void main() {
    vec3 base = uUseTexture ? texture(uTexture, vTexCoord).rgb : uColor;
    float diffuse = max(dot(normalize(vNormal), normalize(-uLightDir)), 0.0);
    FragColor = vec4(base * (0.35 + 0.65 * diffuse), 1.0);
}
`

// program is the linked mesh shader and its uniform locations.
type program struct {
	id         uint32
	mvp        int32
	model      int32
	texture    int32
	useTexture int32
	color      int32
	lightDir   int32
}

func newProgram() (*program, error) {
	id, err := compileProgram(vertexShader, fragmentShader)
	if err != nil {
		return nil, err
	}
	return &program{
		id:         id,
		mvp:        uniform(id, "uMVP"),
		model:      uniform(id, "uModel"),
		texture:    uniform(id, "uTexture"),
		useTexture: uniform(id, "uUseTexture"),
		color:      uniform(id, "uColor"),
		lightDir:   uniform(id, "uLightDir"),
	}, nil
}

func (p *program) delete() {
	gl.DeleteProgram(p.id)
}

// compileProgram compiles vertex and fragment shaders and links them.
func compileProgram(vertexSrc, fragmentSrc string) (uint32, error) {
	vert, err := compileShader(vertexSrc, gl.VERTEX_SHADER, "vertex")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(vert)

	frag, err := compileShader(fragmentSrc, gl.FRAGMENT_SHADER, "fragment")
	if err != nil {
		return 0, err
	}
	defer gl.DeleteShader(frag)

	id := gl.CreateProgram()
	gl.AttachShader(id, vert)
	gl.AttachShader(id, frag)
	gl.LinkProgram(id)

	var status int32
	gl.GetProgramiv(id, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(id, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(id, logLen, nil, &log[0])
		gl.DeleteProgram(id)
		return 0, fmt.Errorf("link: %s", gl.GoStr(&log[0]))
	}
	return id, nil
}

func compileShader(source string, shaderType uint32, name string) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(shader, 1, csource, nil)
	free()
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		gl.DeleteShader(shader)
		return 0, fmt.Errorf("%s shader: %s", name, gl.GoStr(&log[0]))
	}
	return shader, nil
}

func uniform(program uint32, name string) int32 {
	return gl.GetUniformLocation(program, gl.Str(name+"\x00"))
}
