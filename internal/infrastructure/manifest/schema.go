package manifest

import (
	"github.com/invopop/jsonschema"
)

// Schema строит JSON-схему манифеста. Ее публикует cmd/schemagen,
// редакторы авторов подключают схему для автодополнения и валидации
// до того, как файл попадет на сервер.
func Schema() *jsonschema.Schema {
	reflector := jsonschema.Reflector{
		RequiredFromJSONSchemaTags: true,
	}
	schema := reflector.Reflect(&Document{})
	schema.Title = "Rivermarsh Species Manifest"
	schema.Description = "Authored species and resource templates merged into the built-in catalog at startup"
	return schema
}
