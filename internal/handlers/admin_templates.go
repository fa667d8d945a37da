package handlers

import "html/template"

const adminStyles = `
        body { font-family: 'Segoe UI', Arial, sans-serif; background: #f9fafb; margin: 0; }
        header { background: #166534; color: white; padding: 1rem 2rem; display: flex; justify-content: space-between; align-items: center; }
        header a { color: #bbf7d0; text-decoration: none; margin-left: 1.5rem; }
        main { max-width: 1100px; margin: 2rem auto; padding: 0 1rem; }
        table { width: 100%; border-collapse: collapse; background: white; border-radius: 8px; overflow: hidden; box-shadow: 0 1px 3px rgba(0,0,0,0.08); }
        th, td { text-align: left; padding: 0.7rem 1rem; border-bottom: 1px solid #e5e7eb; font-size: 0.9rem; }
        th { background: #f3f4f6; color: #374151; }
        .btn { background: #166534; color: white; border: none; padding: 0.5rem 1rem; border-radius: 6px; cursor: pointer; font-size: 0.9rem; }
        .btn-danger { background: #b91c1c; }
        form.inline { display: inline; }
        .panel { background: white; border-radius: 8px; padding: 1.5rem; margin-bottom: 2rem; box-shadow: 0 1px 3px rgba(0,0,0,0.08); }
        .panel label { display: block; margin-top: 0.8rem; font-size: 0.9rem; color: #374151; }
        .panel input, .panel select, .panel textarea { width: 100%; padding: 0.5rem; margin-top: 0.3rem; border: 1px solid #d1d5db; border-radius: 6px; box-sizing: border-box; }
        .error { background: #fef2f2; border: 1px solid #fecaca; color: #991b1b; padding: 0.7rem; border-radius: 6px; margin-bottom: 1rem; font-size: 0.9rem; }
`

const adminHeader = `
    <header>
        <strong>Rwanda Visit Tours — Admin</strong>
        <nav>
            <a href="/admin">Dashboard</a>
            <a href="/admin/accommodations">Accommodations</a>
            <a href="/admin/bookings">Bookings</a>
            <form class="inline" method="POST" action="/admin/logout">
                <input type="hidden" name="csrf_token" value="{{.CSRFToken}}">
                <button class="btn btn-danger" type="submit">Log out</button>
            </form>
        </nav>
    </header>
`

var dashboardTemplate = template.Must(template.New("admin-dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Admin Dashboard - Rwanda Visit Tours</title>
    <style>` + adminStyles + `</style>
</head>
<body>` + adminHeader + `
    <main>
        <h1>Welcome back</h1>
        <p>Signed in as {{.Email}}.</p>
        <div class="panel">
            <p>Manage the catalog and review bookings:</p>
            <ul>
                <li><a href="/admin/accommodations">Accommodations</a> — hotels and apartments, with photo uploads</li>
                <li><a href="/admin/bookings">Bookings</a> — deposits received via checkout</li>
                <li>Tours and cars are managed through the JSON API under <code>/admin/api</code></li>
            </ul>
        </div>
    </main>
</body>
</html>`))

var accommodationsTemplate = template.Must(template.New("admin-accommodations").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Accommodations - Rwanda Visit Tours Admin</title>
    <script src="https://unpkg.com/htmx.org@1.9.10"></script>
    <style>` + adminStyles + `</style>
</head>
<body>` + adminHeader + `
    <main>
        <h1>Accommodations</h1>
        {{if .Error}}<div class="error">{{.Error}}</div>{{end}}
        <div class="panel">
            <h2>Add a listing</h2>
            <form method="POST" action="/admin/accommodations" enctype="multipart/form-data">
                <input type="hidden" name="csrf_token" value="{{.CSRFToken}}">
                <label>Type
                    <select name="type">
                        <option value="hotel">Hotel</option>
                        <option value="apartment">Apartment</option>
                    </select>
                </label>
                <label>Name<input type="text" name="name" required></label>
                <label>Location<input type="text" name="location"></label>
                <label>Rating (hotels only, 1-5)<input type="number" name="rating" min="0" max="5"></label>
                <label>Description<textarea name="description" rows="3"></textarea></label>
                <label>Photos<input type="file" name="images" accept="image/*" multiple></label>
                <button class="btn" type="submit" style="margin-top: 1rem;">Create</button>
            </form>
        </div>
        <table>
            <thead>
                <tr><th>Name</th><th>Type</th><th>Location</th><th>Rating</th><th>Photos</th><th></th></tr>
            </thead>
            <tbody>
                {{range .Accommodations}}
                <tr id="accommodation-{{.ID}}">
                    <td>{{.Name}}</td>
                    <td>{{.Type}}</td>
                    <td>{{.Location}}</td>
                    <td>{{if .Rating}}{{.Rating}}/5{{else}}&mdash;{{end}}</td>
                    <td>{{len .Images}}</td>
                    <td>
                        <button class="btn btn-danger"
                            hx-delete="/admin/accommodations/{{.ID}}"
                            hx-headers='{"X-CSRF-Token": "{{$.CSRFToken}}"}'
                            hx-target="#accommodation-{{.ID}}"
                            hx-swap="outerHTML"
                            hx-confirm="Delete {{.Name}}?">Delete</button>
                    </td>
                </tr>
                {{else}}
                <tr><td colspan="6">No accommodations yet.</td></tr>
                {{end}}
            </tbody>
        </table>
    </main>
</body>
</html>`))

var bookingsTemplate = template.Must(template.New("admin-bookings").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>Bookings - Rwanda Visit Tours Admin</title>
    <style>` + adminStyles + `
        .pager { margin-top: 1rem; }
        .pager a { color: #166534; margin-right: 1rem; }
    </style>
</head>
<body>
    <header>
        <strong>Rwanda Visit Tours — Admin</strong>
        <nav>
            <a href="/admin">Dashboard</a>
            <a href="/admin/accommodations">Accommodations</a>
            <a href="/admin/bookings">Bookings</a>
        </nav>
    </header>
    <main>
        <h1>Bookings</h1>
        <table>
            <thead>
                <tr><th>When</th><th>Item</th><th>Type</th><th>Customer</th><th>Email</th><th>Phone</th><th>People</th><th>Arrival</th><th>Deposit</th><th>Status</th></tr>
            </thead>
            <tbody>
                {{range .Bookings}}
                <tr>
                    <td>{{.CreatedAt.Format "2006-01-02 15:04"}}</td>
                    <td>{{.ItemName}}</td>
                    <td>{{.Type}}</td>
                    <td>{{.CustomerName}}</td>
                    <td>{{.CustomerEmail}}</td>
                    <td>{{.CustomerPhone}}</td>
                    <td>{{.People}}</td>
                    <td>{{.ArrivalDate}}</td>
                    <td>{{.FormattedAmount}}</td>
                    <td>{{.PaymentStatus}}</td>
                </tr>
                {{else}}
                <tr><td colspan="10">No bookings yet.</td></tr>
                {{end}}
            </tbody>
        </table>
        <div class="pager">
            {{if gt .Page 1}}<a href="/admin/bookings?page={{.PrevPage}}">&larr; Newer</a>{{end}}
            {{if .HasNext}}<a href="/admin/bookings?page={{.NextPage}}">Older &rarr;</a>{{end}}
        </div>
    </main>
</body>
</html>`))
