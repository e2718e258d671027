package procurement

import (
	"context"
	"fmt"

	"github.com/veth14/hotel-backoffice-api/internal/domain"
	"github.com/veth14/hotel-backoffice-api/internal/domain/entity"
	"github.com/veth14/hotel-backoffice-api/internal/domain/repository"
)

// OrderPDFGenerator genera la representación imprimible de una orden de
// compra. La implementación vive en infrastructure/pdf.
type OrderPDFGenerator interface {
	GenerateOrderPDF(ctx context.Context, order *entity.PurchaseOrder, supplier *entity.Supplier) ([]byte, error)
}

// PDFUseCase genera el PDF imprimible de una orden de compra para enviar al
// proveedor o archivar en recepción.
type PDFUseCase struct {
	orderRepo    repository.OrderRepository
	supplierRepo repository.SupplierRepository
	generator    OrderPDFGenerator
}

// NewPDFUseCase construye el caso de uso inyectando sus dependencias.
func NewPDFUseCase(
	orderRepo repository.OrderRepository,
	supplierRepo repository.SupplierRepository,
	generator OrderPDFGenerator,
) *PDFUseCase {
	return &PDFUseCase{orderRepo: orderRepo, supplierRepo: supplierRepo, generator: generator}
}

// DownloadOrderPDF recupera la orden y su proveedor y genera el documento.
//
// Retorna:
//   - (pdfBytes, filename, nil)  si todo sale bien.
//   - domain.ErrNotFound         si la orden no existe.
//   - domain.ErrInvalidInput     si la orden está cancelada.
func (uc *PDFUseCase) DownloadOrderPDF(ctx context.Context, orderID string) (pdfBytes []byte, filename string, err error) {
	order, err := uc.orderRepo.GetByID(orderID)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener orden: %w", err)
	}
	if order == nil {
		return nil, "", domain.ErrNotFound
	}
	if order.Status == entity.OrderCancelled {
		return nil, "", fmt.Errorf("%w: la orden %s está cancelada", domain.ErrInvalidInput, order.OrderNumber)
	}

	// El proveedor puede haber sido eliminado después de crear la orden;
	// el documento se genera igual con los datos mínimos.
	supplier, err := uc.supplierRepo.GetByName(order.Supplier)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: obtener proveedor: %w", err)
	}
	if supplier == nil {
		supplier = &entity.Supplier{Name: order.Supplier}
	}

	pdfBytes, err = uc.generator.GenerateOrderPDF(ctx, order, supplier)
	if err != nil {
		return nil, "", fmt.Errorf("pdf: generación fallida: %w", err)
	}

	filename = fmt.Sprintf("orden_%s.pdf", order.OrderNumber)
	return pdfBytes, filename, nil
}
