// internal/render/templates.go
package render

// HTML fragment templates for the four storefront pages. Escaping is
// handled contextually by html/template.
const fragmentTemplates = `
{{define "cart"}}
{{- if .Empty -}}
<div class="empty-cart">
    <h2>{{t "cart_dynamic.empty_cart"}}</h2>
    <p>{{t "cart_dynamic.add_items"}}</p>
    <a href="shop.html" class="continue-shopping">{{t "cart_dynamic.continue_shopping"}}</a>
</div>
{{- else -}}
{{- range .Items}}
<div class="cart-item" data-index="{{.Index}}" data-product-id="{{.ID}}">
    <div class="item-image">
        <button class="delete-btn" data-remove-index="{{.Index}}" title="Remove item">
            <i class="fas fa-trash"></i>
        </button>
        <img src="{{.Image}}" alt="{{.Name}}">
    </div>
    <div class="item-details">
        <div class="item-name" data-product-title>{{.Name}}</div>
        <div class="item-variants">{{t "cart_dynamic.size"}}: {{.Size}}<br>{{t "cart_dynamic.color"}}: {{.Color}}</div>
        <div class="item-price">{{price .Price}}</div>
        <div class="quantity-controls">
            <button class="quantity-btn minus" data-quantity-delta="-1">-</button>
            <span class="quantity">{{.Quantity}}</span>
            <button class="quantity-btn plus" data-quantity-delta="1">+</button>
        </div>
    </div>
</div>
{{- end}}
{{- end}}
<div class="cart-summary">
    <div class="summary-row"><span class="subtotal-label">{{t "cart.subtotal"}}</span><span id="subtotal">{{money .Totals.Subtotal}}</span></div>
    <div class="summary-row"><span class="discount-label">{{t "cart.discount"}}</span><span id="discount">-{{money .Totals.Discount}}</span></div>
    <div class="summary-row"><span class="delivery-label">{{t "cart.delivery"}}</span><span id="delivery">{{money .Totals.DeliveryFee}}</span></div>
    <div class="summary-row total"><span class="total-label">{{t "cart.total"}}</span><span id="total">{{money .Totals.Total}}</span></div>
    <button class="checkout-btn">{{t "cart.checkout"}}</button>
    <a href="shop.html" class="continue-btn">{{t "cart.continue_shopping"}}</a>
</div>
{{end}}

{{define "product-card"}}
<article class="card" data-product-id="{{.ID}}">
    <div class="img-wrap">
        <img src="{{.Image}}" alt="{{.Title}}" loading="lazy">
    </div>
    <div class="texts">
        <h4 data-product-title>{{.Title}}</h4>
        <div class="rating">
            {{stars .Rating}} <span class="muted">{{rating .Rating}}/5</span>
        </div>
        {{- if .OldPrice}}
        <div class="pricing">
            <p class="current-price">{{price .Price}}</p>
            <p class="old-price">{{price .OldPrice}}</p>
            <span class="discount">-{{.Discount}}%</span>
        </div>
        {{- else}}
        <div class="pricing no-discount">
            <p class="current-price">{{price .Price}}</p>
        </div>
        {{- end}}
    </div>
</article>
{{end}}

{{define "shop"}}
<div class="shop-meta">
    <span id="resultCount">{{.Total}}</span>
    <span id="pageInfo">{{.Page}} / {{.TotalPages}}</span>
</div>
<div id="productGrid" class="product-grid">
{{- if .Cards}}
{{- range .Cards}}{{template "product-card" .}}{{end}}
{{- else}}
    <div class="card"><em>{{t "shop.no_products"}}</em></div>
{{- end}}
</div>
{{end}}

{{define "product"}}
<div class="product-detail" data-product-id="{{.ID}}">
    <div class="product-image">
        <img src="{{.Image}}" alt="{{.Title}}">
    </div>
    <div class="product-info">
        <h1 data-product-title>{{.Title}}</h1>
        <div class="rating">{{stars .Rating}} <span class="muted">{{rating .Rating}}/5</span></div>
        {{- if .OldPrice}}
        <div class="pricing">
            <p class="current-price">{{price .Price}}</p>
            <p class="old-price">{{price .OldPrice}}</p>
            <span class="discount">-{{.Discount}}%</span>
        </div>
        {{- else}}
        <div class="pricing no-discount">
            <p class="current-price">{{price .Price}}</p>
        </div>
        {{- end}}
        <p class="description" data-product-description>{{.Description}}</p>
        <div class="colors">
        {{- range .Colors}}
            <div class="color-swatch" data-color="{{.Value}}" title="{{.Label}}" style="background: {{.Hex}}"></div>
        {{- end}}
        </div>
        <div class="sizes">
        {{- range .Sizes}}
            <div class="size-pill" data-size="{{.Value}}">{{.Label}}</div>
        {{- end}}
        </div>
    </div>
</div>
<div class="product-reviews">
{{- if .Reviews}}
{{- range .Reviews}}
    <div class="review-card">
        <div class="review-stars">{{stars .Rating}}</div>
        <h5 class="review-author">{{.Name}}</h5>
        <p class="review-text">&quot;{{.Text}}&quot;</p>
        <div class="review-date">Posted on {{.Date}}</div>
    </div>
{{- end}}
{{- else}}
    <p class="no-reviews">No reviews yet.</p>
{{- end}}
</div>
{{end}}

{{define "home"}}
<section class="hero">
    <h1>{{t "home.hero_title"}}</h1>
</section>
<section class="new-arrivals">
    <h2>{{t "home.new_arrivals"}}</h2>
    <div id="new-arrivals-container" class="product-grid">
    {{- range .NewArrivals}}{{template "product-card" .}}{{end}}
    </div>
</section>
<section class="top-selling">
    <h2>{{t "home.top_selling"}}</h2>
    <div id="top-selling-container" class="product-grid">
    {{- range .TopSelling}}{{template "product-card" .}}{{end}}
    </div>
</section>
<section class="feedback">
    <div class="feedback-container">
    {{- range .Feedback}}
        <div class="border">
            <div class="feedback-box">
                <div class="stars">{{stars .Rating}}</div>
                <h5>{{.Name}} <span><i class="fa-solid fa-circle-check"></i></span></h5>
                <p>&quot;{{.Text}}&quot;</p>
            </div>
        </div>
    {{- end}}
    </div>
</section>
{{end}}
`
