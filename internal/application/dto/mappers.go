package dto

import "github.com/jhoicas/supermack-billing/internal/domain/entity"

// UserFromEntity convierte un usuario (sin hash).
func UserFromEntity(u *entity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      string(u.Role),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

// LastInvoiceFromEntity convierte la instantánea guardada en sesión. nil -> nil.
func LastInvoiceFromEntity(s *entity.SavedInvoice) *LastInvoiceResponse {
	if s == nil {
		return nil
	}
	lines := make([]CartLineResponse, 0, len(s.Lines))
	for _, l := range s.Lines {
		lines = append(lines, CartLineResponse{
			LineID:    l.LineID,
			Item:      CatalogItemResponse{ID: l.ProductID, Name: l.Name, Price: l.UnitPrice},
			Quantity:  l.Quantity,
			UnitPrice: l.UnitPrice,
			LineTotal: l.LineTotal,
		})
	}
	return &LastInvoiceResponse{
		InvoiceID: s.InvoiceID,
		Number:    s.Number,
		Date:      s.Date,
		Lines:     lines,
		Subtotal:  s.Subtotal,
		Tax:       s.Tax,
		Total:     s.Total,
	}
}
