package order

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiebiao/bookmart/internal/domain/book"
	"github.com/xiebiao/bookmart/internal/domain/order"
)

// fakeOrderRepo 订单仓储的内存假实现
type fakeOrderRepo struct {
	orders  map[uint]*order.Order
	nextID  uint
	created int
	updated int
}

func newFakeOrderRepo() *fakeOrderRepo {
	return &fakeOrderRepo{orders: make(map[uint]*order.Order), nextID: 1}
}

func (f *fakeOrderRepo) Create(ctx context.Context, o *order.Order) error {
	o.ID = f.nextID
	f.nextID++
	f.orders[o.ID] = o
	f.created++
	return nil
}

func (f *fakeOrderRepo) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, order.ErrOrderNotFound
	}
	return o, nil
}

func (f *fakeOrderRepo) Update(ctx context.Context, o *order.Order) error {
	f.orders[o.ID] = o
	f.updated++
	return nil
}

func (f *fakeOrderRepo) ListByUserID(ctx context.Context, userID uint, page, pageSize int) ([]*order.Order, int64, error) {
	var result []*order.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			result = append(result, o)
		}
	}
	return result, int64(len(result)), nil
}

func (f *fakeOrderRepo) ListAll(ctx context.Context, page, pageSize int) ([]*order.Order, int64, error) {
	var result []*order.Order
	for _, o := range f.orders {
		result = append(result, o)
	}
	return result, int64(len(result)), nil
}

// fakeBookRepo 图书仓储的内存假实现(只实现下单用例用到的FindByID)
type fakeBookRepo struct {
	books map[uint]*book.Book
}

func newFakeBookRepo(ids ...uint) *fakeBookRepo {
	books := make(map[uint]*book.Book)
	for _, id := range ids {
		b := book.NewBook("书", "作者", "描述", 1999, "Fiction")
		b.ID = id
		books[id] = b
	}
	return &fakeBookRepo{books: books}
}

func (f *fakeBookRepo) Create(ctx context.Context, b *book.Book) error { return nil }

func (f *fakeBookRepo) FindByID(ctx context.Context, id uint) (*book.Book, error) {
	b, ok := f.books[id]
	if !ok {
		return nil, book.ErrBookNotFound
	}
	return b, nil
}

func (f *fakeBookRepo) FindByISBN(ctx context.Context, isbn string) (*book.Book, error) {
	return nil, book.ErrBookNotFound
}

func (f *fakeBookRepo) Update(ctx context.Context, b *book.Book) error { return nil }
func (f *fakeBookRepo) Delete(ctx context.Context, id uint) error      { return nil }

func (f *fakeBookRepo) List(ctx context.Context, query book.CatalogQuery) ([]*book.Book, int64, error) {
	return nil, 0, nil
}

func (f *fakeBookRepo) ListFeatured(ctx context.Context, limit int) ([]*book.Book, error) {
	return nil, nil
}

func (f *fakeBookRepo) ListCategories(ctx context.Context) ([]string, error) {
	return nil, nil
}

// fakeTx 事务管理器假实现:直接执行回调,不开真实事务
type fakeTx struct{}

func (fakeTx) Transaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

func testCreateRequest() CreateOrderRequest {
	return CreateOrderRequest{
		UserID: 10,
		Items: []CreateOrderItem{
			{BookID: 1, Title: "Go程序设计", Quantity: 2, Price: 1999, ImageURL: "http://img/1.jpg"},
			{BookID: 2, Title: "数据库原理", Quantity: 1, Price: 2500},
		},
		Address: order.ShippingAddress{
			Street: "123 Main St", City: "Springfield", State: "IL",
			ZipCode: "62701", Country: "USA",
		},
		Phone: "13800138000",
	}
}

// TestCreateOrder 测试下单用例
func TestCreateOrder(t *testing.T) {
	t.Run("正常下单", func(t *testing.T) {
		orderRepo := newFakeOrderRepo()
		uc := NewCreateOrderUseCase(orderRepo, newFakeBookRepo(1, 2), fakeTx{})

		view, err := uc.Execute(context.Background(), testCreateRequest())
		require.NoError(t, err)
		require.Equal(t, 1, orderRepo.created)

		assert.NotEmpty(t, view.OrderNo)
		assert.Equal(t, uint(10), view.UserID)
		assert.Equal(t, "Processing", view.Status)
		assert.Equal(t, "Pending", view.PaymentStatus)
		assert.Equal(t, order.DefaultPaymentMethod, view.PaymentMethod)
		assert.Len(t, view.Items, 2)

		// 金额服务端算定:小计6498,税519,免运费
		assert.Equal(t, int64(6498), view.ItemsPrice)
		assert.Equal(t, int64(519), view.TaxPrice)
		assert.Equal(t, int64(0), view.ShippingPrice)
		assert.Equal(t, int64(7017), view.TotalPrice)
	})

	t.Run("引用不存在的图书应失败", func(t *testing.T) {
		orderRepo := newFakeOrderRepo()
		uc := NewCreateOrderUseCase(orderRepo, newFakeBookRepo(1), fakeTx{})

		_, err := uc.Execute(context.Background(), testCreateRequest())
		assert.ErrorIs(t, err, book.ErrBookNotFound)
		assert.Equal(t, 0, orderRepo.created, "校验失败时订单不应落库")
	})

	t.Run("明细为空应失败", func(t *testing.T) {
		orderRepo := newFakeOrderRepo()
		uc := NewCreateOrderUseCase(orderRepo, newFakeBookRepo(), fakeTx{})

		req := testCreateRequest()
		req.Items = nil
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, order.ErrEmptyItems)
	})

	t.Run("地址不完整应失败", func(t *testing.T) {
		orderRepo := newFakeOrderRepo()
		uc := NewCreateOrderUseCase(orderRepo, newFakeBookRepo(1, 2), fakeTx{})

		req := testCreateRequest()
		req.Address.Country = ""
		_, err := uc.Execute(context.Background(), req)
		assert.ErrorIs(t, err, order.ErrIncompleteAddress)
	})

	t.Run("订单号唯一", func(t *testing.T) {
		orderRepo := newFakeOrderRepo()
		uc := NewCreateOrderUseCase(orderRepo, newFakeBookRepo(1, 2), fakeTx{})

		v1, err := uc.Execute(context.Background(), testCreateRequest())
		require.NoError(t, err)
		v2, err := uc.Execute(context.Background(), testCreateRequest())
		require.NoError(t, err)

		assert.NotEqual(t, v1.OrderNo, v2.OrderNo)
	})
}
