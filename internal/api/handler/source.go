package handler

import (
	"mime"
	"net/http"

	"github.com/pkg/errors"
	"github.com/vfg2006/smartvend/infrastructure/loader"
)

// Campo do formulário multipart com o arquivo de vendas
const fileField = "file"

// multipartMemory é quanto do upload fica em memória antes de ir para arquivo temporário
const multipartMemory = 8 << 20

// uploadError marca falhas na leitura do upload, antes de qualquer análise
type uploadError struct {
	err error
}

func (e *uploadError) Error() string { return e.err.Error() }

func (e *uploadError) Unwrap() error { return e.err }

// sourceFromRequest extrai o arquivo do campo multipart "file" ou, fora de multipart, do corpo cru.
// Sem arquivo, devolve uma Source com Body nil. O close devolvido deve sempre ser chamado.
func sourceFromRequest(r *http.Request) (loader.Source, func(), error) {
	noop := func() {}

	mediaType, _, _ := mime.ParseMediaType(r.Header.Get("Content-Type"))

	if mediaType == "multipart/form-data" {
		if err := r.ParseMultipartForm(multipartMemory); err != nil {
			return loader.Source{}, noop, &uploadError{errors.Wrap(err, "reading multipart form")}
		}

		cleanup := func() {
			_ = r.MultipartForm.RemoveAll()
		}

		file, header, err := r.FormFile(fileField)
		if errors.Is(err, http.ErrMissingFile) {
			return loader.Source{}, cleanup, nil
		}
		if err != nil {
			return loader.Source{}, cleanup, &uploadError{errors.Wrap(err, "reading uploaded file")}
		}

		src := loader.Source{
			Filename:    header.Filename,
			ContentType: header.Header.Get("Content-Type"),
			Body:        file,
		}

		return src, func() {
			_ = file.Close()
			cleanup()
		}, nil
	}

	if r.Body == nil || r.Body == http.NoBody || r.ContentLength == 0 {
		return loader.Source{}, noop, nil
	}

	return loader.Source{
		Filename:    r.URL.Query().Get("filename"),
		ContentType: mediaType,
		Body:        r.Body,
	}, noop, nil
}
