package main

import "net/http"

// Marketing pages. The catalog itself is rendered client-side from the
// /api endpoints; these are the static shells around it.

func writeHTML(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write([]byte(body))
}

func homePage(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, `<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<meta name="viewport" content="width=device-width, initial-scale=1.0">
	<title>Rwanda Visit Tours - Tours, Car Rental &amp; Accommodation</title>
	<style>
		body { font-family: 'Segoe UI', Arial, sans-serif; margin: 0; color: #1f2937; }
		nav { background: #166534; padding: 1rem 2rem; display: flex; justify-content: space-between; }
		nav a { color: white; text-decoration: none; margin-left: 1.5rem; }
		.hero { background: #f0fdf4; text-align: center; padding: 5rem 1rem; }
		.hero h1 { font-size: 2.4rem; color: #166534; margin-bottom: 0.5rem; }
		section { max-width: 960px; margin: 0 auto; padding: 3rem 1rem; }
		.cards { display: grid; grid-template-columns: repeat(auto-fit, minmax(260px, 1fr)); gap: 1.5rem; }
		.card { border: 1px solid #e5e7eb; border-radius: 12px; padding: 1.5rem; }
		.card h3 { color: #166534; margin-top: 0; }
	</style>
</head>
<body>
	<nav>
		<strong style="color:white">Rwanda Visit Tours</strong>
		<div>
			<a href="/">Home</a>
			<a href="/services">Services</a>
			<a href="/about">About</a>
			<a href="/contact">Contact</a>
		</div>
	</nav>
	<div class="hero">
		<h1>Discover Rwanda, the Land of a Thousand Hills</h1>
		<p>Gorilla trekking, safaris, car rental and places to stay - booked in minutes with a 50% deposit.</p>
	</div>
	<section>
		<div class="cards">
			<div class="card"><h3>Guided Tours</h3><p>From Volcanoes National Park to Lake Kivu, our tours cover the best of Rwanda with experienced local guides.</p></div>
			<div class="card"><h3>Car Rental</h3><p>Reliable 4x4s and city cars with flexible pick-up, ready for the hills.</p></div>
			<div class="card"><h3>Accommodation</h3><p>Hand-picked hotels and apartments in Kigali and beyond.</p></div>
		</div>
	</section>
</body>
</html>`)
}

func aboutPage(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, `<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<title>About Us - Rwanda Visit Tours</title>
</head>
<body style="font-family: 'Segoe UI', Arial, sans-serif; max-width: 760px; margin: 50px auto; padding: 20px;">
	<h1>About Rwanda Visit Tours</h1>
	<p>We are a Kigali-based tour operator helping visitors experience Rwanda's
	wildlife, culture and landscapes. Every booking is confirmed with a 50%
	deposit; the balance is settled when you arrive.</p>
	<a href="/" style="color: #166534;">&larr; Back to Home</a>
</body>
</html>`)
}

func servicesPage(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, `<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<title>Our Services - Rwanda Visit Tours</title>
</head>
<body style="font-family: 'Segoe UI', Arial, sans-serif; max-width: 760px; margin: 50px auto; padding: 20px;">
	<h1>Our Services</h1>
	<ul>
		<li>Guided tours and safaris across Rwanda</li>
		<li>Car rental with or without a driver</li>
		<li>Hotel and apartment bookings</li>
		<li>Airport transfers</li>
	</ul>
	<a href="/" style="color: #166534;">&larr; Back to Home</a>
</body>
</html>`)
}

func contactPage(w http.ResponseWriter, r *http.Request) {
	writeHTML(w, `<!DOCTYPE html>
<html lang="en">
<head>
	<meta charset="UTF-8">
	<title>Contact Us - Rwanda Visit Tours</title>
</head>
<body style="font-family: 'Segoe UI', Arial, sans-serif; max-width: 760px; margin: 50px auto; padding: 20px;">
	<h1>Contact Us</h1>
	<p>Email: <a href="mailto:bookings@rwandavisittours.com">bookings@rwandavisittours.com</a></p>
	<p>Phone / WhatsApp: +250 788 000 000</p>
	<p>Office: KG 7 Ave, Kigali, Rwanda</p>
	<a href="/" style="color: #166534;">&larr; Back to Home</a>
</body>
</html>`)
}
