//go:build !linux

package jit

func AcquirePage(size int) (*Page, error) {
	return nil, ErrUnsupportedPlatform
}

func (p *Page) Write(off int, b []byte) error {
	return ErrUnsupportedPlatform
}

func (p *Page) Seal() error {
	return ErrUnsupportedPlatform
}

func (p *Page) Release() error {
	return nil
}
