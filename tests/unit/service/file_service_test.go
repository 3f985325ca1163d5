package service_test

import (
	"bytes"
	"context"
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"moim/internal/config"
	"moim/internal/domain"
	"moim/internal/service"
	"moim/mocks"
)

func testS3Config() config.S3Config {
	return config.S3Config{
		Region:        "auto",
		Bucket:        "test-bucket",
		MaxFileSizeMB: 1,
	}
}

// createMultipartFile creates a fake multipart file header and content for testing.
func createMultipartFile(filename string, content []byte, contentType string) (multipart.File, *multipart.FileHeader) {
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
	h.Set("Content-Type", contentType)

	part, _ := writer.CreatePart(h)
	_, _ = part.Write(content)
	writer.Close()

	reader := multipart.NewReader(body, writer.Boundary())
	form, _ := reader.ReadForm(int64(len(content) + 1024))
	file, _ := form.File["file"][0].Open()
	return file, form.File["file"][0]
}

func TestFileService_Upload_Text(t *testing.T) {
	fileRepo := new(mocks.MockFileRepo)
	extractor := new(mocks.MockTextExtractor)
	cfg := testS3Config()
	svc := service.NewFileService(fileRepo, extractor, &cfg, zap.NewNop())

	ownerID := uuid.New()
	content := []byte("철수: 이번 주말에 뭐 할까?")
	file, header := createMultipartFile("chat.txt", content, "text/plain")
	defer file.Close()

	extractor.On("Extract", mock.Anything, content, "chat.txt", "text/plain").
		Return(&domain.ExtractionResult{Text: string(content)}, nil)
	fileRepo.On("Create", mock.Anything, mock.MatchedBy(func(m *domain.FileMeta) bool {
		return m.OwnerID == ownerID &&
			m.FileName == "chat.txt" &&
			m.ExtractedText == string(content) &&
			m.SourceURL == nil
	})).Return(nil)

	meta, err := svc.Upload(context.Background(), service.FileUploadInput{
		OwnerID: ownerID,
		File:    file,
		Header:  header,
	})

	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, meta.ID)
	fileRepo.AssertExpectations(t)
}

func TestFileService_Upload_UnsupportedExtension(t *testing.T) {
	fileRepo := new(mocks.MockFileRepo)
	extractor := new(mocks.MockTextExtractor)
	cfg := testS3Config()
	svc := service.NewFileService(fileRepo, extractor, &cfg, zap.NewNop())

	file, header := createMultipartFile("resume.pdf", []byte("%PDF-1.4"), "application/pdf")
	defer file.Close()

	_, err := svc.Upload(context.Background(), service.FileUploadInput{
		OwnerID: uuid.New(),
		File:    file,
		Header:  header,
	})

	assert.ErrorIs(t, err, domain.ErrUnsupportedFileType)
	extractor.AssertNotCalled(t, "Extract", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestFileService_Upload_TooLarge(t *testing.T) {
	fileRepo := new(mocks.MockFileRepo)
	extractor := new(mocks.MockTextExtractor)
	cfg := testS3Config() // 1 MB limit
	svc := service.NewFileService(fileRepo, extractor, &cfg, zap.NewNop())

	big := bytes.Repeat([]byte("a"), 2*1024*1024)
	file, header := createMultipartFile("chat.txt", big, "text/plain")
	defer file.Close()

	_, err := svc.Upload(context.Background(), service.FileUploadInput{
		OwnerID: uuid.New(),
		File:    file,
		Header:  header,
	})

	assert.ErrorIs(t, err, domain.ErrFileTooLarge)
}

func TestFileService_Upload_ExtractionFailurePropagates(t *testing.T) {
	fileRepo := new(mocks.MockFileRepo)
	extractor := new(mocks.MockTextExtractor)
	cfg := testS3Config()
	svc := service.NewFileService(fileRepo, extractor, &cfg, zap.NewNop())

	file, header := createMultipartFile("shot.png", []byte{0x89, 0x50}, "image/png")
	defer file.Close()

	extractor.On("Extract", mock.Anything, mock.Anything, "shot.png", "image/png").
		Return(nil, domain.ErrOCRNotConfigured)

	_, err := svc.Upload(context.Background(), service.FileUploadInput{
		OwnerID: uuid.New(),
		File:    file,
		Header:  header,
	})

	assert.ErrorIs(t, err, domain.ErrOCRNotConfigured)
	fileRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestFileService_Delete(t *testing.T) {
	fileRepo := new(mocks.MockFileRepo)
	extractor := new(mocks.MockTextExtractor)
	cfg := testS3Config()
	svc := service.NewFileService(fileRepo, extractor, &cfg, zap.NewNop())

	ownerID := uuid.New()
	fileID := uuid.New()
	fileRepo.On("Delete", mock.Anything, ownerID, fileID).Return(nil)

	assert.NoError(t, svc.Delete(context.Background(), ownerID, fileID))
	fileRepo.AssertExpectations(t)
}
