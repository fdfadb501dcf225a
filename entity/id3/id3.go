package id3

import (
	"github.com/bogem/id3v2/v2"
)

// File wraps an ID3v2 tag container bound to an MP3 on disk.
// Opening a file that carries no tag yet yields an empty
// container, saved back on Save.
type File struct {
	*id3v2.Tag
}

func Open(path string, options id3v2.Options) (*File, error) {
	tag, err := id3v2.Open(path, options)
	if err != nil {
		return nil, err
	}
	return &File{tag}, nil
}

func (file *File) SetAlbumArtist(albumArtist string) {
	file.AddTextFrame("TPE2", file.DefaultEncoding(), albumArtist)
}

func (file *File) AlbumArtist() string {
	return file.GetTextFrame("TPE2").Text
}

func (file *File) SetReleaseDate(date string) {
	file.AddTextFrame("TDRC", file.DefaultEncoding(), date)
}

func (file *File) ReleaseDate() string {
	return file.GetTextFrame("TDRC").Text
}

func (file *File) SetTrackNumber(number string) {
	file.AddTextFrame("TRCK", file.DefaultEncoding(), number)
}

func (file *File) TrackNumber() string {
	return file.GetTextFrame("TRCK").Text
}

func (file *File) SetISRC(isrc string) {
	file.AddTextFrame("TSRC", file.DefaultEncoding(), isrc)
}

func (file *File) ISRC() string {
	return file.GetTextFrame("TSRC").Text
}

// SetAttachedPicture embeds the given image as front cover,
// dropping any previously attached picture so that re-applying
// the same artwork does not pile up APIC frames
func (file *File) SetAttachedPicture(picture []byte, mimeType string) {
	file.DeleteFrames(file.CommonID("Attached picture"))
	file.AddAttachedPicture(id3v2.PictureFrame{
		Encoding:    file.DefaultEncoding(),
		MimeType:    mimeType,
		PictureType: id3v2.PTFrontCover,
		Description: "Cover",
		Picture:     picture,
	})
}

// AttachedPicture returns the embedded front cover bytes, if any
func (file *File) AttachedPicture() []byte {
	for _, frame := range file.GetFrames(file.CommonID("Attached picture")) {
		if picture, ok := frame.(id3v2.PictureFrame); ok {
			return picture.Picture
		}
	}
	return nil
}
