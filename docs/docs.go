// Package docs embebe la especificación OpenAPI que se sirve en /docs.
// Va compilada en el binario para que el servidor arranque sin depender
// de archivos en disco ni de un paso de generación previo.
package docs

import _ "embed"

//go:embed swagger.json
var SwaggerJSON []byte
