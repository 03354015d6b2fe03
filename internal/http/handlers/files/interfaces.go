package files

import (
	"context"
	"distro/internal/models"
	"io"
)

const pkg = "filesHandler/"

// FormField is the multipart field carrying the upload.
const FormField = "archivo"

const (
	msgMissingFile  = "No se ha subido ningún archivo"
	msgInvalidForm  = "Formulario multipart inválido"
	msgUploaded     = "Archivo subido exitosamente"
	msgUploadFailed = "Error al subir el archivo"
	msgInvalidName  = "Nombre de archivo inválido"
	msgNotFound     = "Archivo no encontrado"
	msgFindFailed   = "Error al buscar el archivo"
	msgDeleted      = "Archivo eliminado exitosamente"
	msgDeleteFailed = "Error al eliminar el archivo"
)

type FileUploader interface {
	PrepareUpload() error
	Upload(ctx context.Context, upload models.Upload, content io.Reader) (*models.StoredFile, error)
}

type FileOpener interface {
	Open(ctx context.Context, name string) (*models.FileContent, error)
}

type FileDeleter interface {
	Delete(ctx context.Context, name string) error
}
